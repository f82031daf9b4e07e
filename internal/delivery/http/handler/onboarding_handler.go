package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OnboardingHandler struct {
	uc usecase.OnboardingUsecase
}

type saveProfileRequest struct {
	CurrentRole         string   `json:"current_role"`
	CurrentCompany      string   `json:"current_company"`
	MatchingTags        []string `json:"matching_tags"`
	SelectedSkills      []string `json:"selected_skills"`
	SelectedTasks       []string `json:"selected_tasks"`
	Interests           []string `json:"interests"`
	Locations           []string `json:"locations"`
	IncludeRemote       bool     `json:"include_remote"`
	DesiredSalaryMin    *int     `json:"desired_salary_min"`
	DesiredSalaryMax    *int     `json:"desired_salary_max"`
	WorkEnvironmentPref string   `json:"work_environment_pref"`
}

func NewOnboardingHandler(uc usecase.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

func (h *OnboardingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/me/profile", h.SaveProfile)
	r.Get("/me/profile", h.GetProfile)
}

func (h *OnboardingHandler) SaveProfile(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profile, err := h.uc.SaveProfile(c.Context(), userID, usecase.OnboardingInput{
		CurrentRole:         req.CurrentRole,
		CurrentCompany:      req.CurrentCompany,
		MatchingTags:        req.MatchingTags,
		SelectedSkills:      req.SelectedSkills,
		SelectedTasks:       req.SelectedTasks,
		Interests:           req.Interests,
		Locations:           req.Locations,
		IncludeRemote:       req.IncludeRemote,
		DesiredSalaryMin:    req.DesiredSalaryMin,
		DesiredSalaryMax:    req.DesiredSalaryMax,
		WorkEnvironmentPref: req.WorkEnvironmentPref,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}

func (h *OnboardingHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profile, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}

func userIDFromContext(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
