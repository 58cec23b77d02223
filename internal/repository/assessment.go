package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

const assessmentColumns = `id, job_id, title, description, sections, created_at, updated_at`

func scanAssessment(row pgx.Row) (*model.Assessment, error) {
	var a model.Assessment
	err := row.Scan(&a.ID, &a.JobID, &a.Title, &a.Description, &a.Sections,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAssessments returns every assessment, optionally filtered by job.
func (r *Repository) ListAssessments(ctx context.Context, jobID string) ([]model.Assessment, error) {
	q := `SELECT ` + assessmentColumns + ` FROM assessments`
	args := []any{}
	if jobID != "" {
		q += ` WHERE job_id = $1`
		args = append(args, jobID)
	}
	q += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	out := make([]model.Assessment, 0)
	for rows.Next() {
		var a model.Assessment
		if err := rows.Scan(&a.ID, &a.JobID, &a.Title, &a.Description, &a.Sections,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repository) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	a, err := scanAssessment(r.db.QueryRow(ctx,
		`SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return a, nil
}

func (r *Repository) CreateAssessment(ctx context.Context, a *model.Assessment) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO assessments (id, job_id, title, description, sections, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.Title, a.Description, a.Sections, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}

	r.changed(ctx, livequery.CollectionAssessments, a.ID, "create")
	return nil
}

// SaveAssessment stores the whole section/question tree back and stamps
// updated_at. The tree is owned by value, so every authoring mutation
// (add section, add question, delete question, edit metadata) lands here.
func (r *Repository) SaveAssessment(ctx context.Context, a *model.Assessment) error {
	tag, err := r.db.Exec(ctx, `
UPDATE assessments
SET title = $1, description = $2, sections = $3, updated_at = NOW()
WHERE id = $4`,
		a.Title, a.Description, a.Sections, a.ID,
	)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.changed(ctx, livequery.CollectionAssessments, a.ID, "update")
	return nil
}

// DeleteAssessment removes the assessment together with its responses, in
// one transaction.
func (r *Repository) DeleteAssessment(ctx context.Context, id string) error {
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM assessment_responses WHERE assessment_id = $1`, id); err != nil {
			return fmt.Errorf("delete responses: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete assessment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.changed(ctx, livequery.CollectionAssessments, id, "delete")
	r.changed(ctx, livequery.CollectionResponses, id, "delete")
	return nil
}

// SaveResponse stores one response row. Each saved question produces its own
// row keyed by a fresh response id; a candidate's full submission is the
// union of their rows for the assessment.
func (r *Repository) SaveResponse(ctx context.Context, resp *model.AssessmentResponse) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO assessment_responses (id, assessment_id, candidate_id, answers, submitted_at)
VALUES ($1, $2, $3, $4, $5)`,
		resp.ID, resp.AssessmentID, resp.CandidateID, resp.Answers, resp.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}

	r.changed(ctx, livequery.CollectionResponses, resp.ID, "create")
	return nil
}

// ListResponses returns response rows for an assessment, optionally scoped
// to one candidate, oldest first so later saves of the same question win
// when callers merge the answer maps.
func (r *Repository) ListResponses(ctx context.Context, assessmentID, candidateID string) ([]model.AssessmentResponse, error) {
	q := `
SELECT id, assessment_id, candidate_id, answers, submitted_at
FROM assessment_responses
WHERE assessment_id = $1`
	args := []any{assessmentID}
	if candidateID != "" {
		args = append(args, candidateID)
		q += ` AND candidate_id = $2`
	}
	q += ` ORDER BY submitted_at`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	out := make([]model.AssessmentResponse, 0)
	for rows.Next() {
		var resp model.AssessmentResponse
		if err := rows.Scan(&resp.ID, &resp.AssessmentID, &resp.CandidateID,
			&resp.Answers, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}
