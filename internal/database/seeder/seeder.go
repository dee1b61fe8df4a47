package seeder

import (
	"context"

	"careercraft/internal/database"
)

// Seeder inserts reference rows. Run must be safe to repeat on every start.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
