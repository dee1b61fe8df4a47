package repository

import (
	"context"

	"careercraft/internal/database"
	"careercraft/internal/domain/career"
)

type CareerRepository interface {
	ListCareers(ctx context.Context) ([]career.Career, error)
	ListCareerSkills(ctx context.Context, careerID int64) ([]string, error)
	ListCatalog(ctx context.Context) ([]career.WithSkills, error)
}

type PostgresCareerRepository struct {
	db database.DB
}

func NewPostgresCareerRepository(db database.DB) *PostgresCareerRepository {
	return &PostgresCareerRepository{db: db}
}

func (r *PostgresCareerRepository) ListCareers(ctx context.Context) ([]career.Career, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM careers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.Career, 0)
	for rows.Next() {
		var c career.Career
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerRepository) ListCareerSkills(ctx context.Context, careerID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT skill FROM career_skills WHERE career_id = $1 ORDER BY skill ASC`, careerID)
	if err != nil {
		return nil, err
	}
	return database.ScanStrings(rows)
}

// ListCatalog loads every career, ordered by name, with its required skills.
func (r *PostgresCareerRepository) ListCatalog(ctx context.Context) ([]career.WithSkills, error) {
	careers, err := r.ListCareers(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT career_id, skill FROM career_skills ORDER BY career_id ASC, skill ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skillsByCareer := make(map[int64][]string, len(careers))
	for rows.Next() {
		var id int64
		var s string
		if err := rows.Scan(&id, &s); err != nil {
			return nil, err
		}
		skillsByCareer[id] = append(skillsByCareer[id], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]career.WithSkills, 0, len(careers))
	for _, c := range careers {
		skills := skillsByCareer[c.ID]
		if skills == nil {
			skills = []string{}
		}
		out = append(out, career.WithSkills{Career: c, Skills: skills})
	}
	return out, nil
}
