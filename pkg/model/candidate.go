package model

import (
	"time"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/pipeline"
)

// Candidate references its job by id; deleting a job does not cascade.
type Candidate struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Email     string         `json:"email" db:"email"`
	Phone     *string        `json:"phone,omitempty" db:"phone"`
	JobID     string         `json:"jobId" db:"job_id"`
	Stage     pipeline.Stage `json:"stage" db:"stage"`
	AppliedAt time.Time      `json:"appliedAt" db:"applied_at"`
	Notes     *string        `json:"notes,omitempty" db:"notes"`
	Resume    *string        `json:"resume,omitempty" db:"resume"`
}

// TimelineEntry is one row of a candidate's append-only audit log. The
// latest entry's stage always equals the candidate's current stage.
type TimelineEntry struct {
	ID          string         `json:"id" db:"id"`
	CandidateID string         `json:"candidateId" db:"candidate_id"`
	Stage       pipeline.Stage `json:"stage" db:"stage"`
	Notes       *string        `json:"notes,omitempty" db:"notes"`
	Timestamp   time.Time      `json:"timestamp" db:"ts"`
	UserID      *string        `json:"userId,omitempty" db:"user_id"`
}

type CreateCandidateReq struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Phone  *string `json:"phone"`
	JobID  string  `json:"jobId" binding:"required"`
	Resume *string `json:"resume"`
}

// UpdateCandidateReq carries partial field updates. A non-nil Stage turns
// the update into a pipeline transition with a paired timeline entry.
type UpdateCandidateReq struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	JobID  *string `json:"jobId,omitempty"`
	Stage  *string `json:"stage,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Resume *string `json:"resume,omitempty"`
}

type AddNoteReq struct {
	Notes string `json:"notes" binding:"required"`
}

type ListCandidatesQuery struct {
	Stage  string `form:"stage"`
	Search string `form:"search"`
}
