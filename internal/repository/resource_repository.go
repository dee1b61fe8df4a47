package repository

import (
	"context"
	"errors"

	"careercraft/internal/database"
	"careercraft/internal/database/postgres"
	"careercraft/internal/domain/skill"
)

var ErrResourceNotFound = errors.New("resource not found")

type ResourceRepository interface {
	FindBySkill(ctx context.Context, name string) (skill.Resource, error)
	FindBySkills(ctx context.Context, skills []string) (map[string]skill.Resource, error)
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) FindBySkill(ctx context.Context, name string) (skill.Resource, error) {
	var res skill.Resource
	err := r.db.QueryRow(ctx, `SELECT skill, title, url FROM resources WHERE skill = $1`, name).
		Scan(&res.Skill, &res.Title, &res.URL)
	if err != nil {
		if postgres.IsNoRows(err) {
			return skill.Resource{}, ErrResourceNotFound
		}
		return skill.Resource{}, err
	}
	return res, nil
}

// FindBySkills returns the resources that exist for the given skills, keyed by
// skill. Skills without a resource are absent from the map.
func (r *PostgresResourceRepository) FindBySkills(ctx context.Context, skills []string) (map[string]skill.Resource, error) {
	out := make(map[string]skill.Resource, len(skills))
	if len(skills) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT skill, title, url FROM resources WHERE skill = ANY($1)`, skills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var res skill.Resource
		if err := rows.Scan(&res.Skill, &res.Title, &res.URL); err != nil {
			return nil, err
		}
		out[res.Skill] = res
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
