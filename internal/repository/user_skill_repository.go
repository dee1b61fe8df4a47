package repository

import (
	"context"

	"careercraft/internal/database"
	"careercraft/internal/database/postgres"
	"careercraft/internal/domain/user"
)

type UserSkillRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]string, error)
	Add(ctx context.Context, userID int64, skill string) error
	Remove(ctx context.Context, userID int64, skill string) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

// ListByUserID returns the user's skills in ascending order. An unknown user
// simply has no skills.
func (r *PostgresUserSkillRepository) ListByUserID(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT skill FROM user_skills WHERE user_id = $1 ORDER BY skill ASC`, userID)
	if err != nil {
		return nil, err
	}
	return database.ScanStrings(rows)
}

// Add is a no-op when the pair already exists. It returns user.ErrNotFound
// when the user does not exist.
func (r *PostgresUserSkillRepository) Add(ctx context.Context, userID int64, skill string) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		exists, err := userExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrNotFound
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill) VALUES ($1, $2) ON CONFLICT (user_id, skill) DO NOTHING`,
			userID, skill,
		)
		if err != nil {
			if postgres.IsForeignKeyViolation(err) {
				return user.ErrNotFound
			}
			return err
		}
		return nil
	})
}

func (r *PostgresUserSkillRepository) Remove(ctx context.Context, userID int64, skill string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1 AND skill = $2`, userID, skill)
	return err
}
