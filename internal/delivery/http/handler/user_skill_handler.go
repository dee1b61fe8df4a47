package handler

import (
	"errors"

	"careercraft/internal/delivery/http/dto"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/pkg/response"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users/:id/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	// wildcard so skills containing "/" can be removed
	grp.Delete("/*", h.Delete)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserSkillsResponse(userID, items))
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req dto.AddUserSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	s, err := h.uc.AddUserSkill(c.Context(), userID, req.Skill)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.UserSkillChangeResponse{Message: "skill added", Skill: s})
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	s, err := h.uc.RemoveUserSkill(c.Context(), userID, pathValue(c, "*"))
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.UserSkillChangeResponse{Message: "skill removed", Skill: s})
}

func mapUserSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "skill is required", err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "user not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
