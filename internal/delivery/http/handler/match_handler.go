package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.JobMatchUsecase
}

func NewMatchHandler(uc usecase.JobMatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/matches", h.GetMatches)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	params := usecase.JobMatchParams{
		Limit:    fiber.Query[int](c, "limit"),
		Offset:   fiber.Query[int](c, "offset"),
		MinScore: fiber.Query[int](c, "min_score"),
	}

	items, err := h.uc.GetMatches(c.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		case errors.Is(err, usecase.ErrProfileIncomplete):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Complete onboarding before requesting matches", nil, err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(items))
}
