package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.AuthUsecase
}

func NewUserHandler(uc usecase.AuthUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.Me(c.Context(), userID)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}
