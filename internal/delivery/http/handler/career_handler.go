package handler

import (
	"careercraft/internal/delivery/http/dto"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/pkg/response"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CatalogUsecase
}

func NewCareerHandler(uc usecase.CatalogUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/careers", h.List)
}

func (h *CareerHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCareers(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	out := make([]dto.CareerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CareerResponse{ID: it.ID, Name: it.Name, Skills: dto.NonNil(it.Skills)})
	}
	return response.JSON(c, fiber.StatusOK, dto.CareersResponse{Careers: out})
}
