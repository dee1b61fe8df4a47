package usecase

import (
	"context"
	"errors"

	"careercraft/internal/domain/skill"
	"careercraft/internal/domain/user"
	"careercraft/internal/repository"
)

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID int64) ([]string, error)
	AddUserSkill(ctx context.Context, userID int64, raw string) (string, error)
	RemoveUserSkill(ctx context.Context, userID int64, raw string) (string, error)
}

type UserSkill struct {
	repo repository.UserSkillRepository
}

func NewUserSkillUsecase(repo repository.UserSkillRepository) *UserSkill {
	return &UserSkill{repo: repo}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID int64) ([]string, error) {
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, internal("list user skills", err)
	}
	return items, nil
}

// AddUserSkill stores the normalized skill and returns it. Adding a skill the
// user already has succeeds without creating a second row.
func (u *UserSkill) AddUserSkill(ctx context.Context, userID int64, raw string) (string, error) {
	s := skill.Normalize(raw)
	if s == "" {
		return "", ErrInvalidInput
	}

	if err := u.repo.Add(ctx, userID, s); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", internal("add user skill", err)
	}
	return s, nil
}

// RemoveUserSkill deletes the normalized skill if present. Removing a skill
// the user never had is not an error.
func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID int64, raw string) (string, error) {
	s := skill.Normalize(raw)
	if s == "" {
		return "", nil
	}
	if err := u.repo.Remove(ctx, userID, s); err != nil {
		return "", internal("remove user skill", err)
	}
	return s, nil
}
