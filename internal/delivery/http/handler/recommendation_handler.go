package handler

import (
	"careercraft/internal/delivery/http/dto"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/pkg/response"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users/:id/recommendations", h.ForUser)
	r.Post("/recommendations", h.ForSkills)
}

func (h *RecommendationHandler) ForUser(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	report, err := h.uc.GetForUser(c.Context(), userID, parseQueryInt(c, "top_n", 0))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.UserRecommendationsResponse{
		UserID:          userID,
		UserSkills:      dto.NonNil(report.UserSkills),
		Recommendations: dto.NewRecommendationResponses(report.Recommendations),
	})
}

func (h *RecommendationHandler) ForSkills(c fiber.Ctx) error {
	var req dto.SkillsRecommendationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	report, err := h.uc.GetForSkills(c.Context(), req.Skills, req.TopN)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.SkillsRecommendationsResponse{
		UserSkills:      dto.NonNil(report.UserSkills),
		Recommendations: dto.NewRecommendationResponses(report.Recommendations),
	})
}
