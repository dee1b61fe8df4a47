package seeder

import (
	"context"
	"fmt"

	"careercraft/internal/database"
	"careercraft/internal/domain/skill"
)

type CareersSeeder struct {
	Careers []CareerSeed
}

func (CareersSeeder) Name() string { return "careers" }

func (s CareersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "careers", "id", "name"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "career_skills", "career_id", "skill"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, c := range s.Careers {
			if c.Name == "" {
				continue
			}
			if _, err := tx.Exec(ctx, `INSERT INTO careers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, c.Name); err != nil {
				return err
			}

			var careerID int64
			if err := tx.QueryRow(ctx, `SELECT id FROM careers WHERE name = $1`, c.Name).Scan(&careerID); err != nil {
				return fmt.Errorf("career %q: %w", c.Name, err)
			}

			for _, sk := range skill.NormalizeAll(c.Skills) {
				_, err := tx.Exec(
					ctx,
					`INSERT INTO career_skills (career_id, skill) VALUES ($1, $2) ON CONFLICT (career_id, skill) DO NOTHING`,
					careerID,
					sk,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
