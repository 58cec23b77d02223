package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

const jobColumns = `id, title, slug, status, tags, description, sort_order, created_at, updated_at`

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(&j.ID, &j.Title, &j.Slug, &j.Status, &j.Tags, &j.Description,
		&j.Order, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// ListJobs returns jobs sorted by their board order. An empty status lists
// every job; archived jobs keep their order and sort among the rest.
func (r *Repository) ListJobs(ctx context.Context, status string) ([]model.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs`
	args := []any{}
	if status != "" && status != "all" {
		q += ` WHERE status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	out := make([]model.Job, 0)
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Slug, &j.Status, &j.Tags, &j.Description,
			&j.Order, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *Repository) GetJob(ctx context.Context, id string) (*model.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// CreateJob inserts the job with order = max+1, failing with ErrSlugTaken
// when the slug is already in use.
func (r *Repository) CreateJob(ctx context.Context, job *model.Job) error {
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM jobs WHERE slug = $1)`, job.Slug,
		).Scan(&taken); err != nil {
			return fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return ErrSlugTaken
		}

		if err := tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM jobs`,
		).Scan(&job.Order); err != nil {
			return fmt.Errorf("next order: %w", err)
		}

		_, err := tx.Exec(ctx, `
INSERT INTO jobs (id, title, slug, status, tags, description, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			job.ID, job.Title, job.Slug, job.Status, job.Tags, job.Description,
			job.Order, job.CreatedAt, job.UpdatedAt,
		)
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		if err != nil {
			return fmt.Errorf("insert job: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.changed(ctx, livequery.CollectionJobs, job.ID, "create")
	return nil
}

// UpdateJob applies partial field updates and stamps updated_at. Slug
// uniqueness is enforced excluding the job itself.
func (r *Repository) UpdateJob(ctx context.Context, id string, req model.UpdateJobReq) (*model.Job, error) {
	var updated *model.Job
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		if req.Slug != nil {
			var taken bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM jobs WHERE slug = $1 AND id <> $2)`, *req.Slug, id,
			).Scan(&taken); err != nil {
				return fmt.Errorf("check slug: %w", err)
			}
			if taken {
				return ErrSlugTaken
			}
		}

		q := `UPDATE jobs SET updated_at = NOW()`
		args := []any{}
		set := func(col string, val any) {
			args = append(args, val)
			q += fmt.Sprintf(", %s = $%d", col, len(args))
		}
		if req.Title != nil {
			set("title", *req.Title)
		}
		if req.Slug != nil {
			set("slug", *req.Slug)
		}
		if req.Status != nil {
			set("status", *req.Status)
		}
		if req.Tags != nil {
			set("tags", req.Tags)
		}
		if req.Description != nil {
			set("description", *req.Description)
		}
		args = append(args, id)
		q += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), jobColumns)

		j, err := scanJob(tx.QueryRow(ctx, q, args...))
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		if err != nil {
			return fmt.Errorf("update job: %w", err)
		}
		updated = j
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.changed(ctx, livequery.CollectionJobs, id, "update")
	return updated, nil
}

// ToggleArchive flips active/archived. The job keeps its order value so it
// stays sortable among all jobs.
func (r *Repository) ToggleArchive(ctx context.Context, id string) (*model.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, `
UPDATE jobs
SET status = CASE WHEN status = 'active' THEN 'archived' ELSE 'active' END,
    updated_at = NOW()
WHERE id = $1
RETURNING `+jobColumns, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle archive: %w", err)
	}

	r.changed(ctx, livequery.CollectionJobs, id, "update")
	return j, nil
}

func (r *Repository) DeleteJob(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.changed(ctx, livequery.CollectionJobs, id, "delete")
	return nil
}

// ReorderJobs assigns order 0..n-1 following the given sequence, in one
// transaction so a half-applied order is never observable.
func (r *Repository) ReorderJobs(ctx context.Context, jobIDs []string) error {
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		for i, id := range jobIDs {
			tag, err := tx.Exec(ctx,
				`UPDATE jobs SET sort_order = $1, updated_at = NOW() WHERE id = $2`, i, id)
			if err != nil {
				return fmt.Errorf("reorder job %s: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("reorder job %s: %w", id, ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.changed(ctx, livequery.CollectionJobs, "", "update")
	return nil
}
