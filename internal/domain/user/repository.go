package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("username already exists")
)

type Repository interface {
	Create(ctx context.Context, username string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
