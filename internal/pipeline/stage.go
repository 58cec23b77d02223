// Package pipeline defines the candidate stage machine for the hiring board.
//
// Stage columns, left to right:
//
//	Applied ─ Screen ─ Tech ─ Offer ─ Hired
//	                                  Rejected
//
// Any stage may move to any other stage (recruiters drag cards freely);
// Hired and Rejected are terminal only in the sense that the board renders
// them as closing columns. Every observable stage change is paired with a
// timeline entry by the repository layer.
package pipeline

import "fmt"

// Stage values mirror the stage column in PostgreSQL.
type Stage string

const (
	StageApplied  Stage = "Applied"
	StageScreen   Stage = "Screen"
	StageTech     Stage = "Tech"
	StageOffer    Stage = "Offer"
	StageHired    Stage = "Hired"
	StageRejected Stage = "Rejected"
)

// ordered is the canonical board column order.
var ordered = []Stage{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

// Stages returns all stages in board column order.
func Stages() []Stage {
	out := make([]Stage, len(ordered))
	copy(out, ordered)
	return out
}

// ParseStage converts a raw string to a Stage, returning an error for
// unknown values.
func ParseStage(s string) (Stage, error) {
	st := Stage(s)
	switch st {
	case StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown candidate stage %q", s)
}

// IsTerminal reports whether the stage closes the pipeline for a candidate.
func IsTerminal(s Stage) bool { return s == StageHired || s == StageRejected }

// Index returns the board column index of s, or -1 for unknown stages.
func Index(s Stage) int {
	for i, st := range ordered {
		if st == s {
			return i
		}
	}
	return -1
}
