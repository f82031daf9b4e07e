package usecase

import (
	"context"
	"strings"
	"time"

	"career-compass/internal/domain/job"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

// refreshLockTTL keeps concurrent refreshes of the same query from
// hammering the external search API.
const refreshLockTTL = 2 * time.Minute

// JobSearchClient fetches postings from the external job-search API.
type JobSearchClient interface {
	SearchJobs(ctx context.Context, query, location string) ([]job.Posting, error)
}

type RefreshJobsInput struct {
	Query    string
	Location string
}

type RefreshJobsResult struct {
	Fetched int
	Stored  int
	Skipped bool
}

type JobFeedUsecase interface {
	Refresh(ctx context.Context, in RefreshJobsInput) (RefreshJobsResult, error)
}

type JobFeed struct {
	jobs   repository.JobRepository
	search JobSearchClient
	cache  KVCache
	logger logger.Logger
}

func NewJobFeedUsecase(jobs repository.JobRepository, search JobSearchClient, cache KVCache, log logger.Logger) *JobFeed {
	if log == nil {
		log = logger.NewNop()
	}
	return &JobFeed{jobs: jobs, search: search, cache: cache, logger: log}
}

// Refresh pulls fresh postings for the query from the external search
// API and upserts them. A short-lived lock key makes repeat requests
// for the same query a no-op while a refresh is in flight; if the lock
// store is down the refresh proceeds without coordination.
func (u *JobFeed) Refresh(ctx context.Context, in RefreshJobsInput) (RefreshJobsResult, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return RefreshJobsResult{}, ErrInvalidInput
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = "United States"
	}
	if u.search == nil {
		return RefreshJobsResult{}, ErrInternal
	}

	if u.cache != nil {
		lockKey := refreshLockKey(query, location)
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", refreshLockTTL)
		if err == nil && !ok {
			u.logger.Info("job refresh already in flight",
				zap.String("query", query), zap.String("location", location))
			return RefreshJobsResult{Skipped: true}, nil
		}
	}

	postings, err := u.search.SearchJobs(ctx, query, location)
	if err != nil {
		u.logger.Error("job search fetch failed", err,
			zap.String("query", query), zap.String("location", location))
		return RefreshJobsResult{}, ErrInternal
	}

	valid := postings[:0]
	for _, p := range postings {
		if err := p.Validate(); err != nil {
			u.logger.Warn("dropping malformed posting from feed",
				zap.String("external_job_id", p.ExternalJobID), zap.Error(err))
			continue
		}
		valid = append(valid, p)
	}

	if len(valid) > 0 {
		if err := u.jobs.Upsert(ctx, valid); err != nil {
			return RefreshJobsResult{}, ErrInternal
		}
	}

	u.logger.Info("job feed refreshed",
		zap.String("query", query), zap.String("location", location),
		zap.Int("fetched", len(postings)), zap.Int("stored", len(valid)))

	return RefreshJobsResult{Fetched: len(postings), Stored: len(valid)}, nil
}

func refreshLockKey(query, location string) string {
	return "jobs:refresh:lock:q=" + strings.ToLower(query) + ":l=" + strings.ToLower(location)
}
