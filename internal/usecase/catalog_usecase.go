package usecase

import (
	"context"
	"log"

	"careercraft/internal/domain/career"
	"careercraft/internal/repository"
)

type CatalogUsecase interface {
	ListCareers(ctx context.Context) ([]career.WithSkills, error)
}

type Catalog struct {
	careers repository.CareerRepository
	cache   CatalogCache
	logger  *log.Logger
}

// NewCatalogUsecase builds the catalog reader. cache and logger may be nil.
func NewCatalogUsecase(careers repository.CareerRepository, cache CatalogCache, logger *log.Logger) *Catalog {
	return &Catalog{careers: careers, cache: cache, logger: logger}
}

type cachedCareer struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// ListCareers returns careers ordered by name with their required skills.
func (u *Catalog) ListCareers(ctx context.Context) ([]career.WithSkills, error) {
	if u.cache != nil {
		var cached []cachedCareer
		ok, err := u.cache.GetJSON(ctx, catalogCacheKey, &cached)
		if err != nil {
			u.logf("[Cache] catalog read failed: %v", err)
		}
		if ok && err == nil {
			return fromCached(cached), nil
		}
	}

	items, err := u.careers.ListCatalog(ctx)
	if err != nil {
		return nil, internal("list catalog", err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, catalogCacheKey, toCached(items), 0); err != nil {
			u.logf("[Cache] catalog write failed: %v", err)
		}
	}
	return items, nil
}

func (u *Catalog) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func toCached(items []career.WithSkills) []cachedCareer {
	out := make([]cachedCareer, 0, len(items))
	for _, it := range items {
		out = append(out, cachedCareer{ID: it.ID, Name: it.Name, Skills: it.Skills})
	}
	return out
}

func fromCached(items []cachedCareer) []career.WithSkills {
	out := make([]career.WithSkills, 0, len(items))
	for _, it := range items {
		skills := it.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, career.WithSkills{Career: career.Career{ID: it.ID, Name: it.Name}, Skills: skills})
	}
	return out
}
