package repository

import (
	"context"

	"careercraft/internal/database"
	"careercraft/internal/database/postgres"
	"careercraft/internal/domain/user"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, username string) (user.User, error) {
	u := user.User{Username: username}
	err := r.db.QueryRow(ctx, `INSERT INTO users (username) VALUES ($1) RETURNING id`, username).Scan(&u.ID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return user.User{}, user.ErrConflict
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx, `SELECT id, username FROM users WHERE username = $1`, username).Scan(&u.ID, &u.Username)
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return userExists(ctx, r.db, id)
}

func userExists(ctx context.Context, q database.Querier, id int64) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
