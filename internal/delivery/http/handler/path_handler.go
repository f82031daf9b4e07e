package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PathHandler struct {
	uc usecase.CareerPathUsecase
}

type explorePathsRequest struct {
	CurrentRole string   `json:"current_role"`
	Skills      []string `json:"skills"`
	Tasks       []string `json:"tasks"`
	Interests   []string `json:"interests"`
}

func NewPathHandler(uc usecase.CareerPathUsecase) *PathHandler {
	return &PathHandler{uc: uc}
}

func (h *PathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/explore", h.Explore)
}

func (h *PathHandler) Explore(c fiber.Ctx) error {
	var req explorePathsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	paths, cached, err := h.uc.Explore(c.Context(), usecase.ExplorePathsInput{
		CurrentRole: req.CurrentRole,
		Skills:      req.Skills,
		Tasks:       req.Tasks,
		Interests:   req.Interests,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Current role is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerPathsResponse(paths, cached))
}
