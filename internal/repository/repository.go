// Package repository is the data-access layer over PostgreSQL. Mutations
// that must be observed together (candidate update + timeline append,
// assessment delete + its responses, full reorders) run inside a single
// transaction via execTx; committed writes are announced on the livequery
// notifier so subscribed readers re-run their queries.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
)

// Sentinel errors crossing the repository boundary. Handlers translate them
// to 404 / 400 envelopes.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrSlugTaken = errors.New("slug already exists")
)

type Repository struct {
	db     *pgxpool.Pool
	notify *livequery.Notifier
}

func NewRepository(db *pgxpool.Pool, notify *livequery.Notifier) *Repository {
	return &Repository{db: db, notify: notify}
}

// execTx runs fn inside a transaction, rolling back on error.
func (r *Repository) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// changed publishes a committed mutation to the live change feed.
func (r *Repository) changed(ctx context.Context, collection, id, op string) {
	r.notify.Publish(ctx, livequery.Change{Collection: collection, ID: id, Op: op})
}

// isUniqueViolation reports whether err is a unique-constraint violation
// (the database-level backstop for the slug check).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
