package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrProfileIncomplete = errors.New("profile incomplete")

// rankingPoolSize caps how many active postings are scored per request.
const rankingPoolSize = 500

type JobMatchParams struct {
	Limit    int
	Offset   int
	MinScore int
}

type JobMatchItem struct {
	JobID       uuid.UUID
	Title       string
	Company     string
	Location    string
	Remote      bool
	Hybrid      bool
	SalaryMin   *int
	SalaryMax   *int
	PostedAt    *time.Time
	ApplyURL    string
	MatchScore  int
	Reasons     []string
}

type JobMatchUsecase interface {
	GetMatches(ctx context.Context, userID uuid.UUID, params JobMatchParams) ([]JobMatchItem, error)
}

type JobMatch struct {
	jobs     repository.JobRepository
	profiles user.ProfileRepository
	logger   logger.Logger
	now      func() time.Time
}

func NewJobMatchUsecase(jobs repository.JobRepository, profiles user.ProfileRepository, log logger.Logger) *JobMatch {
	if log == nil {
		log = logger.NewNop()
	}
	return &JobMatch{jobs: jobs, profiles: profiles, logger: log, now: time.Now}
}

// GetMatches ranks the active posting pool against the caller's
// onboarding profile. Ranking itself never fails on a bad posting;
// malformed records are dropped and counted.
func (u *JobMatch) GetMatches(ctx context.Context, userID uuid.UUID, params JobMatchParams) ([]JobMatchItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}
	if len(profile.MatchingTags) == 0 && len(profile.Locations) == 0 && profile.DesiredSalaryMin == nil {
		return nil, ErrProfileIncomplete
	}

	postings, err := u.jobs.ListActive(ctx, rankingPoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}

	invalid := 0
	for _, p := range postings {
		if p.Validate() != nil {
			invalid++
		}
	}
	if invalid > 0 {
		u.logger.Warn("skipping malformed postings during ranking",
			zap.Int("skipped", invalid), zap.Int("total", len(postings)))
	}

	ranked := matching.Rank(profile, postings, u.now())

	out := make([]JobMatchItem, 0, limit)
	skipped := 0
	for _, r := range ranked {
		if r.MatchScore < minScore {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, JobMatchItem{
			JobID:      r.Posting.ID,
			Title:      r.Posting.Title,
			Company:    r.Posting.Company,
			Location:   r.Posting.Location,
			Remote:     r.Posting.Remote,
			Hybrid:     r.Posting.Hybrid,
			SalaryMin:  r.Posting.SalaryMin,
			SalaryMax:  r.Posting.SalaryMax,
			PostedAt:   r.Posting.PostedAt,
			ApplyURL:   r.Posting.ApplyURL,
			MatchScore: r.MatchScore,
			Reasons:    r.Reasons,
		})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
