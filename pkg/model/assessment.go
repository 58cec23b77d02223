package model

import (
	"encoding/json"
	"time"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

// IsChoice reports whether t requires an options list.
func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultiChoice
}

// Assessment owns its sections (and they their questions) by value; the
// whole tree is loaded and stored as one document.
type Assessment struct {
	ID          string              `json:"id" db:"id"`
	JobID       string              `json:"jobId" db:"job_id"`
	Title       string              `json:"title" db:"title"`
	Description *string             `json:"description,omitempty" db:"description"`
	Sections    []AssessmentSection `json:"sections" db:"sections"`
	CreatedAt   time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time           `json:"updatedAt" db:"updated_at"`
}

type AssessmentSection struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	Order       int                  `json:"order"`
	Questions   []AssessmentQuestion `json:"questions"`
}

type AssessmentQuestion struct {
	ID               string           `json:"id"`
	Type             QuestionType     `json:"type"`
	Question         string           `json:"question"`
	Required         bool             `json:"required"`
	Options          []string         `json:"options,omitempty"`
	Validation       *ValidationRules `json:"validation,omitempty"`
	ConditionalLogic *Condition       `json:"conditionalLogic,omitempty"`
	Order            int              `json:"order"`
	CorrectAnswer    *string          `json:"correctAnswer,omitempty"`
}

type ValidationRules struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

// Condition hides a question until the answer to DependsOn matches ShowWhen.
// DependsOn may reference a question in any section of the same assessment.
type Condition struct {
	DependsOn string   `json:"dependsOn"`
	ShowWhen  ShowWhen `json:"showWhen"`
}

// ShowWhen accepts either a single string or a list of strings on the wire.
type ShowWhen []string

func (s *ShowWhen) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = ShowWhen{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = ShowWhen(many)
	return nil
}

// AssessmentResponse records answers for one candidate. The UI saves one row
// per answered question, so the answers map usually holds a single question
// id; a full submission is the union of a candidate's rows.
type AssessmentResponse struct {
	ID           string         `json:"id" db:"id"`
	AssessmentID string         `json:"assessmentId" db:"assessment_id"`
	CandidateID  string         `json:"candidateId" db:"candidate_id"`
	Answers      map[string]any `json:"answers" db:"answers"`
	SubmittedAt  time.Time      `json:"submittedAt" db:"submitted_at"`
}

type CreateAssessmentReq struct {
	JobID       string              `json:"jobId" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description *string             `json:"description"`
	Sections    []AssessmentSection `json:"sections"`
}

type UpdateAssessmentReq struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Sections    []AssessmentSection `json:"sections,omitempty"`
}

type AddSectionReq struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type AddQuestionReq struct {
	Type          QuestionType     `json:"type" binding:"required"`
	Question      string           `json:"question" binding:"required"`
	Required      bool             `json:"required"`
	Options       []string         `json:"options"`
	Validation    *ValidationRules `json:"validation"`
	Conditional   *Condition       `json:"conditionalLogic"`
	CorrectAnswer *string          `json:"correctAnswer"`
}

type SaveResponseReq struct {
	CandidateID string `json:"candidateId" binding:"required"`
	QuestionID  string `json:"questionId" binding:"required"`
	Answer      any    `json:"answer"`
}

type PracticeGradeReq struct {
	QuestionID string `json:"questionId" binding:"required"`
	Selected   string `json:"selected" binding:"required"`
}
