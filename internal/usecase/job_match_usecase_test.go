package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/job"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/logger"
)

type stubJobRepo struct {
	postings []job.Posting
	listErr  error
	upserted []job.Posting
}

func (s *stubJobRepo) ListActive(_ context.Context, limit, _ int) ([]job.Posting, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.postings) > limit {
		return s.postings[:limit], nil
	}
	return s.postings, nil
}

func (s *stubJobRepo) Upsert(_ context.Context, postings []job.Posting) error {
	s.upserted = append(s.upserted, postings...)
	return nil
}

type stubProfileRepo struct {
	profile user.Profile
	err     error
}

func (s *stubProfileRepo) Upsert(_ context.Context, _ user.Profile) error { return nil }

func (s *stubProfileRepo) GetByUserID(_ context.Context, _ uuid.UUID) (user.Profile, error) {
	return s.profile, s.err
}

func intPtr(v int) *int { return &v }

func matchTestPostings(now time.Time) []job.Posting {
	recent := now.Add(-2 * 24 * time.Hour)
	stale := now.Add(-90 * 24 * time.Hour)
	return []job.Posting{
		{
			ID:        uuid.New(),
			Title:     "Senior Python Engineer",
			Company:   "Acme",
			Location:  "Austin, TX",
			Tags:      []string{"python", "sql"},
			SalaryMin: intPtr(120000),
			SalaryMax: intPtr(160000),
			PostedAt:  &recent,
			IsActive:  true,
		},
		{
			ID:       uuid.New(),
			Title:    "Forklift Operator",
			Company:  "Warehouse Co",
			Location: "Omaha, NE",
			Tags:     []string{"forklift"},
			PostedAt: &stale,
			IsActive: true,
		},
		{
			ID:        uuid.New(),
			Title:     "Data Analyst",
			Company:   "Broken Inc",
			Tags:      []string{"python"},
			SalaryMin: intPtr(90000),
			SalaryMax: intPtr(50000),
			IsActive:  true,
		},
	}
}

func matchTestProfile(userID uuid.UUID) user.Profile {
	return user.Profile{
		UserID:           userID,
		CurrentRole:      "Data Analyst",
		MatchingTags:     []string{"python", "sql"},
		Locations:        []string{"Austin"},
		DesiredSalaryMin: intPtr(100000),
		DesiredSalaryMax: intPtr(150000),
	}
}

func TestGetMatches_RanksAndFiltersMalformed(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	jobs := &stubJobRepo{postings: matchTestPostings(now)}
	profiles := &stubProfileRepo{profile: matchTestProfile(userID)}

	uc := NewJobMatchUsecase(jobs, profiles, logger.NewNop())
	uc.now = func() time.Time { return now }

	got, err := uc.GetMatches(context.Background(), userID, JobMatchParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("results = %d, want 1 (zero-score and malformed postings dropped): %+v", len(got), got)
	}
	if got[0].Title != "Senior Python Engineer" {
		t.Fatalf("top match = %q", got[0].Title)
	}
	if got[0].MatchScore <= 0 || got[0].MatchScore > 100 {
		t.Fatalf("score out of range: %d", got[0].MatchScore)
	}
	if len(got[0].Reasons) == 0 {
		t.Fatalf("expected at least one reason")
	}
}

func TestGetMatches_MinScoreFilter(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	jobs := &stubJobRepo{postings: matchTestPostings(now)}
	profiles := &stubProfileRepo{profile: matchTestProfile(userID)}

	uc := NewJobMatchUsecase(jobs, profiles, logger.NewNop())
	uc.now = func() time.Time { return now }

	got, err := uc.GetMatches(context.Background(), userID, JobMatchParams{MinScore: 101})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results above min score 101, got %d", len(got))
	}
}

func TestGetMatches_LimitAndOffset(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	posted := now.Add(-24 * time.Hour)

	var postings []job.Posting
	for i := 0; i < 5; i++ {
		postings = append(postings, job.Posting{
			ID:       uuid.New(),
			Title:    "Python Engineer",
			Company:  "Acme",
			Location: "Austin, TX",
			Tags:     []string{"python"},
			PostedAt: &posted,
			IsActive: true,
		})
	}
	jobs := &stubJobRepo{postings: postings}
	profiles := &stubProfileRepo{profile: matchTestProfile(userID)}

	uc := NewJobMatchUsecase(jobs, profiles, logger.NewNop())
	uc.now = func() time.Time { return now }

	got, err := uc.GetMatches(context.Background(), userID, JobMatchParams{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
}

func TestGetMatches_ProfileErrors(t *testing.T) {
	userID := uuid.New()
	jobs := &stubJobRepo{}

	uc := NewJobMatchUsecase(jobs, &stubProfileRepo{err: user.ErrNotFound}, logger.NewNop())
	if _, err := uc.GetMatches(context.Background(), userID, JobMatchParams{}); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	uc = NewJobMatchUsecase(jobs, &stubProfileRepo{profile: user.Profile{UserID: userID}}, logger.NewNop())
	if _, err := uc.GetMatches(context.Background(), userID, JobMatchParams{}); !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}

	uc = NewJobMatchUsecase(jobs, &stubProfileRepo{}, logger.NewNop())
	if _, err := uc.GetMatches(context.Background(), uuid.Nil, JobMatchParams{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for missing user id, got %v", err)
	}
}
