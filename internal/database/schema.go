package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema mirrors the five collections of the document store the UI renders
// from. Assessments embed their section/question tree as one jsonb document
// because the authoring flow always loads and saves the whole tree at once.
const schema = `
CREATE TABLE IF NOT EXISTS jobs (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    slug        TEXT NOT NULL UNIQUE,
    status      TEXT NOT NULL DEFAULT 'active',
    tags        TEXT[] NOT NULL DEFAULT '{}',
    description TEXT,
    sort_order  INTEGER NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status);
CREATE INDEX IF NOT EXISTS idx_jobs_sort_order ON jobs (sort_order);

CREATE TABLE IF NOT EXISTS candidates (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    phone      TEXT,
    job_id     TEXT NOT NULL,
    stage      TEXT NOT NULL DEFAULT 'Applied',
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    notes      TEXT,
    resume     TEXT
);
CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates (job_id);
CREATE INDEX IF NOT EXISTS idx_candidates_stage ON candidates (stage);
CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates (email);
CREATE INDEX IF NOT EXISTS idx_candidates_name ON candidates (name);

CREATE TABLE IF NOT EXISTS candidate_timeline (
    id           TEXT PRIMARY KEY,
    candidate_id TEXT NOT NULL,
    stage        TEXT NOT NULL,
    notes        TEXT,
    ts           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    user_id      TEXT
);
CREATE INDEX IF NOT EXISTS idx_timeline_candidate_ts ON candidate_timeline (candidate_id, ts DESC);

CREATE TABLE IF NOT EXISTS assessments (
    id          TEXT PRIMARY KEY,
    job_id      TEXT NOT NULL,
    title       TEXT NOT NULL,
    description TEXT,
    sections    JSONB NOT NULL DEFAULT '[]',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_assessments_job_id ON assessments (job_id);

CREATE TABLE IF NOT EXISTS assessment_responses (
    id            TEXT PRIMARY KEY,
    assessment_id TEXT NOT NULL,
    candidate_id  TEXT NOT NULL,
    answers       JSONB NOT NULL DEFAULT '{}',
    submitted_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_responses_assessment_id ON assessment_responses (assessment_id);
CREATE INDEX IF NOT EXISTS idx_responses_candidate_id ON assessment_responses (candidate_id);
`

// Migrate applies the schema. Statements are idempotent so it runs on every
// startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
