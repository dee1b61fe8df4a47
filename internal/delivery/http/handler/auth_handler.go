package handler

import (
	"errors"

	"careercraft/internal/delivery/http/dto"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/pkg/response"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/users", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.UsernameRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	u, err := h.uc.Register(c.Context(), req.Username)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.UserResponse{ID: u.ID, Username: u.Username})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.UsernameRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	u, err := h.uc.Login(c.Context(), req.Username)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.UserResponse{ID: u.ID, Username: u.Username})
}

func mapAuthUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "username is required", err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "username already exists", err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "user not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
