package usecase

import (
	"context"
	"errors"
	"strings"

	"careercraft/internal/domain/user"
)

// AuthUsecase registers users and resolves them by name. There are no
// credentials: logging in is a lookup.
type AuthUsecase interface {
	Register(ctx context.Context, username string) (user.User, error)
	Login(ctx context.Context, username string) (user.User, error)
}

type Auth struct {
	users user.Repository
}

func NewAuthUsecase(users user.Repository) *Auth {
	return &Auth{users: users}
}

func (u *Auth) Register(ctx context.Context, username string) (user.User, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return user.User{}, ErrInvalidInput
	}

	created, err := u.users.Create(ctx, name)
	if err != nil {
		if errors.Is(err, user.ErrConflict) {
			return user.User{}, ErrConflict
		}
		return user.User{}, internal("create user", err)
	}
	return created, nil
}

func (u *Auth) Login(ctx context.Context, username string) (user.User, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return user.User{}, ErrInvalidInput
	}

	found, err := u.users.GetByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, internal("find user", err)
	}
	return found, nil
}
