package pipeline_test

import (
	"testing"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/pipeline"
)

// ── ParseStage ─────────────────────────────────────────────────────────────

func TestParseStage_ValidValues(t *testing.T) {
	valid := []string{"Applied", "Screen", "Tech", "Offer", "Hired", "Rejected"}
	for _, s := range valid {
		got, err := pipeline.ParseStage(s)
		if err != nil {
			t.Errorf("ParseStage(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStage(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStage_InvalidValue(t *testing.T) {
	for _, s := range []string{"", "applied", "APPLIED", "Interview", "all"} {
		if _, err := pipeline.ParseStage(s); err == nil {
			t.Errorf("ParseStage(%q) expected error, got nil", s)
		}
	}
}

// ── Stages ─────────────────────────────────────────────────────────────────

func TestStages_Order(t *testing.T) {
	want := []pipeline.Stage{
		pipeline.StageApplied,
		pipeline.StageScreen,
		pipeline.StageTech,
		pipeline.StageOffer,
		pipeline.StageHired,
		pipeline.StageRejected,
	}
	got := pipeline.Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() returned %d stages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stages()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestStages_CallerCannotMutate(t *testing.T) {
	s := pipeline.Stages()
	s[0] = pipeline.StageRejected
	if pipeline.Stages()[0] != pipeline.StageApplied {
		t.Error("mutating the returned slice leaked into the package")
	}
}

// ── Index / IsTerminal ─────────────────────────────────────────────────────

func TestIndex(t *testing.T) {
	cases := []struct {
		stage pipeline.Stage
		want  int
	}{
		{pipeline.StageApplied, 0},
		{pipeline.StageScreen, 1},
		{pipeline.StageTech, 2},
		{pipeline.StageOffer, 3},
		{pipeline.StageHired, 4},
		{pipeline.StageRejected, 5},
		{pipeline.Stage("Interview"), -1},
	}
	for _, c := range cases {
		if got := pipeline.Index(c.stage); got != c.want {
			t.Errorf("Index(%s) = %d, want %d", c.stage, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []pipeline.Stage{pipeline.StageHired, pipeline.StageRejected} {
		if !pipeline.IsTerminal(s) {
			t.Errorf("IsTerminal(%s) should be true", s)
		}
	}
	for _, s := range []pipeline.Stage{
		pipeline.StageApplied, pipeline.StageScreen, pipeline.StageTech, pipeline.StageOffer,
	} {
		if pipeline.IsTerminal(s) {
			t.Errorf("IsTerminal(%s) should be false", s)
		}
	}
}
