package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/pipeline"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

const candidateColumns = `id, name, email, phone, job_id, stage, applied_at, notes, resume`

func scanCandidate(row pgx.Row) (*model.Candidate, error) {
	var c model.Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.JobID, &c.Stage,
		&c.AppliedAt, &c.Notes, &c.Resume)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCandidates filters by exact stage (unless empty or "all") and by a
// case-insensitive substring over name and email.
func (r *Repository) ListCandidates(ctx context.Context, stage, search string) ([]model.Candidate, error) {
	q := `SELECT ` + candidateColumns + ` FROM candidates`
	args := []any{}
	where := []string{}

	if stage != "" && stage != "all" {
		args = append(args, stage)
		where = append(where, fmt.Sprintf("stage = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		where = append(where, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d)", len(args), len(args)))
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += ` ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.JobID, &c.Stage,
			&c.AppliedAt, &c.Notes, &c.Resume); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// CreateCandidate inserts the candidate at Applied together with its first
// timeline entry, in one transaction.
func (r *Repository) CreateCandidate(ctx context.Context, cand *model.Candidate, userID *string) error {
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
INSERT INTO candidates (id, name, email, phone, job_id, stage, applied_at, notes, resume)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			cand.ID, cand.Name, cand.Email, cand.Phone, cand.JobID, cand.Stage,
			cand.AppliedAt, cand.Notes, cand.Resume,
		)
		if err != nil {
			return fmt.Errorf("insert candidate: %w", err)
		}
		return insertTimelineEntry(ctx, tx, cand.ID, cand.Stage, nil, cand.AppliedAt, userID)
	})
	if err != nil {
		return err
	}

	r.changed(ctx, livequery.CollectionCandidates, cand.ID, "create")
	r.changed(ctx, livequery.CollectionTimeline, cand.ID, "create")
	return nil
}

// UpdateCandidate applies partial field updates. When the request carries a
// stage, the stage change and its timeline entry commit atomically: there is
// no observable window where the candidate and its latest timeline entry
// disagree, and a failure applies neither.
func (r *Repository) UpdateCandidate(ctx context.Context, id string, req model.UpdateCandidateReq, userID *string) (*model.Candidate, error) {
	var updated *model.Candidate
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		q := `UPDATE candidates SET id = id`
		args := []any{}
		set := func(col string, val any) {
			args = append(args, val)
			q += fmt.Sprintf(", %s = $%d", col, len(args))
		}
		if req.Name != nil {
			set("name", *req.Name)
		}
		if req.Email != nil {
			set("email", *req.Email)
		}
		if req.Phone != nil {
			set("phone", *req.Phone)
		}
		if req.JobID != nil {
			set("job_id", *req.JobID)
		}
		if req.Stage != nil {
			set("stage", *req.Stage)
		}
		if req.Notes != nil {
			set("notes", *req.Notes)
		}
		if req.Resume != nil {
			set("resume", *req.Resume)
		}
		args = append(args, id)
		q += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), candidateColumns)

		c, err := scanCandidate(tx.QueryRow(ctx, q, args...))
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("update candidate: %w", err)
		}

		if req.Stage != nil {
			if err := insertTimelineEntry(ctx, tx, id, c.Stage, req.Notes, time.Now().UTC(), userID); err != nil {
				return err
			}
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.changed(ctx, livequery.CollectionCandidates, id, "update")
	if req.Stage != nil {
		r.changed(ctx, livequery.CollectionTimeline, id, "create")
	}
	return updated, nil
}

// AddNote saves a note on the candidate and stamps a timeline entry carrying
// the candidate's current, unchanged stage, in one transaction.
func (r *Repository) AddNote(ctx context.Context, id, note string, userID *string) (*model.Candidate, error) {
	var updated *model.Candidate
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		c, err := scanCandidate(tx.QueryRow(ctx,
			`UPDATE candidates SET notes = $1 WHERE id = $2 RETURNING `+candidateColumns, note, id))
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		if err := insertTimelineEntry(ctx, tx, id, c.Stage, &note, time.Now().UTC(), userID); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.changed(ctx, livequery.CollectionCandidates, id, "update")
	r.changed(ctx, livequery.CollectionTimeline, id, "create")
	return updated, nil
}

// ListTimeline returns a candidate's audit log, most recent first.
func (r *Repository) ListTimeline(ctx context.Context, candidateID string) ([]model.TimelineEntry, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, candidate_id, stage, notes, ts, user_id
FROM candidate_timeline
WHERE candidate_id = $1
ORDER BY ts DESC`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query timeline: %w", err)
	}
	defer rows.Close()

	out := make([]model.TimelineEntry, 0)
	for rows.Next() {
		var e model.TimelineEntry
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Stage, &e.Notes, &e.Timestamp, &e.UserID); err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func insertTimelineEntry(ctx context.Context, tx pgx.Tx, candidateID string, stage pipeline.Stage, notes *string, ts time.Time, userID *string) error {
	_, err := tx.Exec(ctx, `
INSERT INTO candidate_timeline (id, candidate_id, stage, notes, ts, user_id)
VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), candidateID, stage, notes, ts, userID,
	)
	if err != nil {
		return fmt.Errorf("insert timeline entry: %w", err)
	}
	return nil
}
