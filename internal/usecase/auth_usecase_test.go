package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careercraft/internal/domain/user"
)

type memUserRepo struct {
	byName map[string]user.User
	err    error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byName: map[string]user.User{}}
}

func (m *memUserRepo) Create(_ context.Context, username string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	if _, ok := m.byName[username]; ok {
		return user.User{}, user.ErrConflict
	}
	u := user.User{ID: int64(len(m.byName) + 1), Username: username}
	m.byName[username] = u
	return u, nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byName[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	for _, u := range m.byName {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func TestAuth_Register(t *testing.T) {
	uc := NewAuthUsecase(newMemUserRepo())
	ctx := context.Background()

	u, err := uc.Register(ctx, "  alice ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID == 0 || u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := uc.Register(ctx, "alice"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := uc.Register(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Login(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUsecase(repo)
	ctx := context.Background()

	created, _ := uc.Register(ctx, "bob")

	u, err := uc.Login(ctx, " bob ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, u.ID)
	}

	if _, err := uc.Login(ctx, "carol"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Login(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_StorageFailure(t *testing.T) {
	repo := newMemUserRepo()
	repo.err = errors.New("connection refused")
	uc := NewAuthUsecase(repo)

	_, err := uc.Register(context.Background(), "dave")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}
