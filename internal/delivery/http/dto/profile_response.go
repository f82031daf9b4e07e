package dto

import (
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID              uuid.UUID `json:"user_id"`
	CurrentRole         string    `json:"current_role"`
	CurrentCompany      string    `json:"current_company,omitempty"`
	MatchingTags        []string  `json:"matching_tags"`
	SelectedSkills      []string  `json:"selected_skills"`
	SelectedTasks       []string  `json:"selected_tasks"`
	Interests           []string  `json:"interests"`
	Locations           []string  `json:"locations"`
	IncludeRemote       bool      `json:"include_remote"`
	DesiredSalaryMin    *int      `json:"desired_salary_min,omitempty"`
	DesiredSalaryMax    *int      `json:"desired_salary_max,omitempty"`
	WorkEnvironmentPref string    `json:"work_environment_pref"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:              p.UserID,
		CurrentRole:         p.CurrentRole,
		CurrentCompany:      p.CurrentCompany,
		MatchingTags:        emptyIfNil(p.MatchingTags),
		SelectedSkills:      emptyIfNil(p.SelectedSkills),
		SelectedTasks:       emptyIfNil(p.SelectedTasks),
		Interests:           emptyIfNil(p.Interests),
		Locations:           emptyIfNil(p.Locations),
		IncludeRemote:       p.IncludeRemote,
		DesiredSalaryMin:    p.DesiredSalaryMin,
		DesiredSalaryMax:    p.DesiredSalaryMax,
		WorkEnvironmentPref: string(p.WorkEnvironmentPref),
	}
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
