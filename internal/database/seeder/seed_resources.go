package seeder

import (
	"context"

	"careercraft/internal/database"
	"careercraft/internal/domain/skill"
)

type ResourcesSeeder struct {
	Resources []ResourceSeed
}

func (ResourcesSeeder) Name() string { return "resources" }

func (s ResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "resources", "skill", "title", "url"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, r := range s.Resources {
			sk := skill.Normalize(r.Skill)
			if sk == "" {
				continue
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO resources (skill, title, url) VALUES ($1, $2, $3) ON CONFLICT (skill) DO NOTHING`,
				sk,
				r.Title,
				r.URL,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
