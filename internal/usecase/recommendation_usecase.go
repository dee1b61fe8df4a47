package usecase

import (
	"context"

	"careercraft/internal/domain/recommendation"
	"careercraft/internal/domain/skill"
	"careercraft/internal/repository"
)

type RecommendationParams struct {
	DefaultTopN int
	MaxTopN     int
}

type RecommendationReport struct {
	UserSkills      []string
	Recommendations []recommendation.Result
}

type RecommendationUsecase interface {
	GetForUser(ctx context.Context, userID int64, topN int) (RecommendationReport, error)
	GetForSkills(ctx context.Context, rawSkills []string, topN int) (RecommendationReport, error)
}

type Recommendation struct {
	catalog    CatalogUsecase
	resources  repository.ResourceRepository
	userSkills repository.UserSkillRepository
	params     RecommendationParams
}

func NewRecommendationUsecase(
	catalog CatalogUsecase,
	resources repository.ResourceRepository,
	userSkills repository.UserSkillRepository,
	params RecommendationParams,
) *Recommendation {
	if params.DefaultTopN <= 0 {
		params.DefaultTopN = recommendation.DefaultTopN
	}
	if params.MaxTopN < params.DefaultTopN {
		params.MaxTopN = params.DefaultTopN
	}
	return &Recommendation{catalog: catalog, resources: resources, userSkills: userSkills, params: params}
}

// GetForUser ranks careers against the stored skills of userID. A user with
// no skills still gets every career back, scored zero.
func (u *Recommendation) GetForUser(ctx context.Context, userID int64, topN int) (RecommendationReport, error) {
	skills, err := u.userSkills.ListByUserID(ctx, userID)
	if err != nil {
		return RecommendationReport{}, internal("list user skills", err)
	}
	return u.recommend(ctx, skills, topN)
}

// GetForSkills ranks careers against an ad-hoc list of raw skill strings.
func (u *Recommendation) GetForSkills(ctx context.Context, rawSkills []string, topN int) (RecommendationReport, error) {
	return u.recommend(ctx, skill.NormalizeAll(rawSkills), topN)
}

func (u *Recommendation) recommend(ctx context.Context, skills []string, topN int) (RecommendationReport, error) {
	catalog, err := u.catalog.ListCareers(ctx)
	if err != nil {
		return RecommendationReport{}, err
	}

	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	careers := make([]recommendation.Career, 0, len(catalog))
	gaps := make([]string, 0)
	seenGap := map[string]struct{}{}
	for _, c := range catalog {
		careers = append(careers, recommendation.Career{Name: c.Name, RequiredSkills: c.Skills})
		for _, s := range c.Skills {
			if _, ok := have[s]; ok {
				continue
			}
			if _, ok := seenGap[s]; ok {
				continue
			}
			seenGap[s] = struct{}{}
			gaps = append(gaps, s)
		}
	}

	found, err := u.resources.FindBySkills(ctx, gaps)
	if err != nil {
		return RecommendationReport{}, internal("find resources", err)
	}
	lookup := func(s string) (skill.Resource, bool) {
		r, ok := found[s]
		return r, ok
	}

	return RecommendationReport{
		UserSkills:      skills,
		Recommendations: recommendation.Recommend(skills, careers, lookup, u.topN(topN)),
	}, nil
}

func (u *Recommendation) topN(requested int) int {
	if requested <= 0 {
		return u.params.DefaultTopN
	}
	if requested > u.params.MaxTopN {
		return u.params.MaxTopN
	}
	return requested
}
