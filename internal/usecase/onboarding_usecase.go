package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type OnboardingInput struct {
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
	WorkEnvironmentPref string
}

type OnboardingUsecase interface {
	SaveProfile(ctx context.Context, userID uuid.UUID, in OnboardingInput) (user.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
}

type Onboarding struct {
	profiles user.ProfileRepository
}

func NewOnboardingUsecase(profiles user.ProfileRepository) *Onboarding {
	return &Onboarding{profiles: profiles}
}

func (u *Onboarding) SaveProfile(ctx context.Context, userID uuid.UUID, in OnboardingInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.CurrentRole) == "" {
		return user.Profile{}, ErrInvalidInput
	}

	pref, ok := parseWorkEnvironment(in.WorkEnvironmentPref)
	if !ok {
		return user.Profile{}, ErrInvalidInput
	}

	// Desired salary bounds travel together.
	if (in.DesiredSalaryMin == nil) != (in.DesiredSalaryMax == nil) {
		return user.Profile{}, ErrInvalidInput
	}
	if in.DesiredSalaryMin != nil && *in.DesiredSalaryMin > *in.DesiredSalaryMax {
		return user.Profile{}, ErrInvalidInput
	}

	p := user.Profile{
		UserID:              userID,
		CurrentRole:         strings.TrimSpace(in.CurrentRole),
		CurrentCompany:      strings.TrimSpace(in.CurrentCompany),
		MatchingTags:        normalizeTagList(in.MatchingTags),
		SelectedSkills:      cleanList(in.SelectedSkills),
		SelectedTasks:       cleanList(in.SelectedTasks),
		Interests:           cleanList(in.Interests),
		Locations:           cleanList(in.Locations),
		IncludeRemote:       in.IncludeRemote,
		DesiredSalaryMin:    in.DesiredSalaryMin,
		DesiredSalaryMax:    in.DesiredSalaryMax,
		WorkEnvironmentPref: pref,
	}

	if err := u.profiles.Upsert(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}

	saved, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}

func (u *Onboarding) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func parseWorkEnvironment(s string) (user.WorkEnvironment, bool) {
	switch user.WorkEnvironment(strings.ToLower(strings.TrimSpace(s))) {
	case user.WorkEnvironmentRemote:
		return user.WorkEnvironmentRemote, true
	case user.WorkEnvironmentHybrid:
		return user.WorkEnvironmentHybrid, true
	case user.WorkEnvironmentOffice:
		return user.WorkEnvironmentOffice, true
	case user.WorkEnvironmentFlexible, "":
		return user.WorkEnvironmentFlexible, true
	default:
		return "", false
	}
}

// normalizeTagList lower-cases matching tags up front so the scorer
// compares like with like.
func normalizeTagList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
