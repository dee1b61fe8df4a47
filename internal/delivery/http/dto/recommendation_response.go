package dto

import "careercraft/internal/domain/recommendation"

type SkillsRecommendationRequest struct {
	Skills []string `json:"skills"`
	TopN   int      `json:"top_n"`
}

type UserRecommendationsResponse struct {
	UserID          int64                    `json:"user_id"`
	UserSkills      []string                 `json:"user_skills"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

type SkillsRecommendationsResponse struct {
	UserSkills      []string                 `json:"user_skills"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

type RecommendationResponse struct {
	Career        string             `json:"career"`
	Score         float64            `json:"score"`
	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []string           `json:"missing_skills"`
	NextSteps     []NextStepResponse `json:"next_steps"`
}

type NextStepResponse struct {
	Skill string `json:"skill"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func NewRecommendationResponses(items []recommendation.Result) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		steps := make([]NextStepResponse, 0, len(it.NextSteps))
		for _, st := range it.NextSteps {
			steps = append(steps, NextStepResponse{Skill: st.Skill, Title: st.Title, URL: st.URL})
		}
		out = append(out, RecommendationResponse{
			Career:        it.Career,
			Score:         it.Score,
			MatchedSkills: NonNil(it.MatchedSkills),
			MissingSkills: NonNil(it.MissingSkills),
			NextSteps:     steps,
		})
	}
	return out
}

func NonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
