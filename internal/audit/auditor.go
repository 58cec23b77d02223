// Package audit wires up the cron job that periodically verifies the
// pipeline invariant: for every candidate, the latest timeline entry's stage
// equals the candidate's current stage. Divergences can only come from the
// known last-write-wins gap between independent writers; the sweep detects
// and logs them, it never mutates.
package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Divergence is one candidate whose stage and audit log disagree.
type Divergence struct {
	CandidateID   string
	Stage         string
	TimelineStage *string // nil when the candidate has no timeline at all
}

// Auditor wraps robfig/cron and manages the consistency sweep.
type Auditor struct {
	cron *cron.Cron
	pool *pgxpool.Pool
	log  *zap.Logger
	spec string // cron spec, e.g. "@every 5m"
}

// New creates an Auditor that sweeps on the given interval spec.
func New(pool *pgxpool.Pool, log *zap.Logger, interval string) *Auditor {
	return &Auditor{
		cron: cron.New(),
		pool: pool,
		log:  log,
		spec: fmt.Sprintf("@every %s", interval),
	}
}

// Start registers the sweep and starts the scheduler. Runs one sweep
// immediately so a bad store state is reported without waiting for the
// first tick.
func (a *Auditor) Start(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.spec, func() {
		a.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	a.cron.Start()
	a.log.Info("audit: cron started", zap.String("spec", a.spec))

	go a.runSweep(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (a *Auditor) Stop() {
	a.cron.Stop()
	a.log.Info("audit: cron stopped")
}

func (a *Auditor) runSweep(ctx context.Context) {
	divergences, err := FindDivergences(ctx, a.pool)
	if err != nil {
		a.log.Error("audit: sweep failed", zap.Error(err))
		return
	}

	for _, d := range divergences {
		fields := []zap.Field{
			zap.String("candidate_id", d.CandidateID),
			zap.String("stage", d.Stage),
		}
		if d.TimelineStage != nil {
			fields = append(fields, zap.String("latest_timeline_stage", *d.TimelineStage))
		} else {
			fields = append(fields, zap.Bool("timeline_missing", true))
		}
		a.log.Warn("audit: stage/timeline divergence", fields...)
	}

	a.log.Info("audit: sweep complete", zap.Int("divergences", len(divergences)))
}

// FindDivergences returns candidates whose latest timeline stage differs
// from their current stage, or who have no timeline entries at all.
func FindDivergences(ctx context.Context, pool *pgxpool.Pool) ([]Divergence, error) {
	rows, err := pool.Query(ctx, `
SELECT c.id, c.stage, latest.stage
FROM candidates c
LEFT JOIN LATERAL (
    SELECT t.stage
    FROM candidate_timeline t
    WHERE t.candidate_id = c.id
    ORDER BY t.ts DESC
    LIMIT 1
) latest ON TRUE
WHERE latest.stage IS DISTINCT FROM c.stage`)
	if err != nil {
		return nil, fmt.Errorf("divergence query: %w", err)
	}
	defer rows.Close()

	out := make([]Divergence, 0)
	for rows.Next() {
		var d Divergence
		if err := rows.Scan(&d.CandidateID, &d.Stage, &d.TimelineStage); err != nil {
			return nil, fmt.Errorf("scan divergence: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
