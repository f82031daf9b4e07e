package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type WorkEnvironment string

const (
	WorkEnvironmentRemote   WorkEnvironment = "remote"
	WorkEnvironmentHybrid   WorkEnvironment = "hybrid"
	WorkEnvironmentOffice   WorkEnvironment = "office"
	WorkEnvironmentFlexible WorkEnvironment = "flexible"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the onboarding answers used for job matching and
// career-path generation. It is immutable for the duration of a match
// request.
type Profile struct {
	UserID              uuid.UUID
	CurrentRole         string
	CurrentCompany      string
	MatchingTags        []string
	SelectedSkills      []string
	SelectedTasks       []string
	Interests           []string
	Locations           []string
	IncludeRemote       bool
	DesiredSalaryMin    *int
	DesiredSalaryMax    *int
	WorkEnvironmentPref WorkEnvironment
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
