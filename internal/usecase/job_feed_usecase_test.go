package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/job"
	"career-compass/internal/pkg/logger"
)

type stubSearchClient struct {
	postings []job.Posting
	err      error
	calls    int
}

func (s *stubSearchClient) SearchJobs(_ context.Context, _, _ string) ([]job.Posting, error) {
	s.calls++
	return s.postings, s.err
}

func feedPostings() []job.Posting {
	now := time.Now().UTC()
	return []job.Posting{
		{ID: uuid.New(), ExternalJobID: "a", Title: "Engineer", IsActive: true, ScrapedAt: &now},
		{ID: uuid.New(), ExternalJobID: "b", Title: "Analyst", IsActive: true, ScrapedAt: &now,
			SalaryMin: intPtr(90000), SalaryMax: intPtr(50000)},
	}
}

func TestRefresh_StoresValidPostings(t *testing.T) {
	jobs := &stubJobRepo{}
	search := &stubSearchClient{postings: feedPostings()}
	uc := NewJobFeedUsecase(jobs, search, newFakeKV(), logger.NewNop())

	got, err := uc.Refresh(context.Background(), RefreshJobsInput{Query: "software engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fetched != 2 || got.Stored != 1 || got.Skipped {
		t.Fatalf("result = %+v, want fetched=2 stored=1", got)
	}
	if len(jobs.upserted) != 1 || jobs.upserted[0].ExternalJobID != "a" {
		t.Fatalf("upserted = %+v", jobs.upserted)
	}
}

func TestRefresh_EmptyQueryRejected(t *testing.T) {
	uc := NewJobFeedUsecase(&stubJobRepo{}, &stubSearchClient{}, newFakeKV(), logger.NewNop())
	if _, err := uc.Refresh(context.Background(), RefreshJobsInput{Query: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRefresh_InFlightLockSkips(t *testing.T) {
	jobs := &stubJobRepo{}
	search := &stubSearchClient{postings: feedPostings()}
	kv := newFakeKV()
	uc := NewJobFeedUsecase(jobs, search, kv, logger.NewNop())

	in := RefreshJobsInput{Query: "data analyst", Location: "Austin, TX"}
	if _, err := uc.Refresh(context.Background(), in); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}

	got, err := uc.Refresh(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Skipped {
		t.Fatalf("second refresh should be skipped while lock is held")
	}
	if search.calls != 1 {
		t.Fatalf("search calls = %d, want 1", search.calls)
	}
}

func TestRefresh_SearchFailure(t *testing.T) {
	search := &stubSearchClient{err: errors.New("quota exceeded")}
	uc := NewJobFeedUsecase(&stubJobRepo{}, search, newFakeKV(), logger.NewNop())

	if _, err := uc.Refresh(context.Background(), RefreshJobsInput{Query: "nurse"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
