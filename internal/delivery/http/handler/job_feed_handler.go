package handler

import (
	"errors"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobFeedHandler struct {
	uc usecase.JobFeedUsecase
}

type refreshJobsRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

type refreshJobsResponse struct {
	Fetched int  `json:"fetched"`
	Stored  int  `json:"stored"`
	Skipped bool `json:"skipped"`
}

func NewJobFeedHandler(uc usecase.JobFeedUsecase) *JobFeedHandler {
	return &JobFeedHandler{uc: uc}
}

func (h *JobFeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/refresh", h.Refresh)
}

func (h *JobFeedHandler) Refresh(c fiber.Ctx) error {
	var req refreshJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Refresh(c.Context(), usecase.RefreshJobsInput{Query: req.Query, Location: req.Location})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Query is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	status := fiber.StatusOK
	if res.Skipped {
		status = fiber.StatusAccepted
	}
	return response.Success(c, status, response.MessageOK, refreshJobsResponse{
		Fetched: res.Fetched,
		Stored:  res.Stored,
		Skipped: res.Skipped,
	})
}
