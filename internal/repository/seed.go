package repository

import (
	"context"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/seed"
)

// Reseed wipes and regenerates every collection. See the seed package for
// the generated dataset.
func (r *Repository) Reseed(ctx context.Context) (*seed.Stats, error) {
	return seed.Run(ctx, r.db)
}
