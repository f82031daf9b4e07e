package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/path"
	"career-compass/internal/pkg/logger"
)

type stubGenerator struct {
	paths []path.CareerPath
	err   error
	calls int
	last  path.GenerationInput
}

func (s *stubGenerator) GenerateCareerPaths(_ context.Context, in path.GenerationInput) ([]path.CareerPath, error) {
	s.calls++
	s.last = in
	return s.paths, s.err
}

func newExploreInput() ExplorePathsInput {
	return ExplorePathsInput{
		CurrentRole: "Music Teacher",
		Skills:      []string{"teaching", "piano"},
		Tasks:       []string{"lesson planning"},
		Interests:   []string{"technology"},
	}
}

func TestExplore_EmptyRoleRejected(t *testing.T) {
	uc := NewCareerPathUsecase(&stubGenerator{}, NewCareerPathCache(newFakeKV(), logger.NewNop()), logger.NewNop())

	if _, _, err := uc.Explore(context.Background(), ExplorePathsInput{CurrentRole: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExplore_MissGeneratesAndStores(t *testing.T) {
	gen := &stubGenerator{paths: samplePaths()}
	cache := NewCareerPathCache(newFakeKV(), logger.NewNop())
	uc := NewCareerPathUsecase(gen, cache, logger.NewNop())

	got, cached, err := uc.Explore(context.Background(), newExploreInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Fatalf("first call should be a cache miss")
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if len(got) != 1 || got[0].Role != "Product Manager (Music Tech)" {
		t.Fatalf("unexpected paths: %+v", got)
	}
	if gen.last.CurrentRole != "Music Teacher" || len(gen.last.Skills) != 2 {
		t.Fatalf("generation input not threaded through: %+v", gen.last)
	}

	key := CareerPathsCacheKey("Music Teacher", []string{"teaching", "piano"}, []string{"lesson planning"}, []string{"technology"})
	if _, ok := cache.Get(context.Background(), key); !ok {
		t.Fatalf("result was not stored under the tuple key")
	}
}

func TestExplore_HitSkipsGenerator(t *testing.T) {
	gen := &stubGenerator{paths: samplePaths()}
	cache := NewCareerPathCache(newFakeKV(), logger.NewNop())
	uc := NewCareerPathUsecase(gen, cache, logger.NewNop())

	in := newExploreInput()
	if _, _, err := uc.Explore(context.Background(), in); err != nil {
		t.Fatalf("warm-up call failed: %v", err)
	}

	got, cached, err := uc.Explore(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cached {
		t.Fatalf("second call should be served from cache")
	}
	if gen.calls != 1 {
		t.Fatalf("generator called on a cache hit: calls = %d", gen.calls)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected paths: %+v", got)
	}
}

func TestExplore_GeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model overloaded")}
	uc := NewCareerPathUsecase(gen, NewCareerPathCache(newFakeKV(), logger.NewNop()), logger.NewNop())

	if _, _, err := uc.Explore(context.Background(), newExploreInput()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestExplore_StoreFailureNotSurfaced(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("oom")
	gen := &stubGenerator{paths: samplePaths()}
	uc := NewCareerPathUsecase(gen, NewCareerPathCache(kv, logger.NewNop()), logger.NewNop())

	got, cached, err := uc.Explore(context.Background(), newExploreInput())
	if err != nil {
		t.Fatalf("store failure must not surface: %v", err)
	}
	if cached || len(got) != 1 {
		t.Fatalf("expected fresh generation result, got cached=%v paths=%+v", cached, got)
	}
}
