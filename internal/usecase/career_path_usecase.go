package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/path"
	"career-compass/internal/pkg/logger"

	"go.uber.org/zap"
)

// CareerPathGenerator produces career suggestions for an onboarding
// tuple. The Gemini adapter in infrastructure/ai implements it.
type CareerPathGenerator interface {
	GenerateCareerPaths(ctx context.Context, in path.GenerationInput) ([]path.CareerPath, error)
}

type ExplorePathsInput struct {
	CurrentRole string
	Skills      []string
	Tasks       []string
	Interests   []string
}

type CareerPathUsecase interface {
	Explore(ctx context.Context, in ExplorePathsInput) ([]path.CareerPath, bool, error)
}

type CareerPath struct {
	generator CareerPathGenerator
	cache     *CareerPathCache
	logger    logger.Logger
}

func NewCareerPathUsecase(generator CareerPathGenerator, cache *CareerPathCache, log logger.Logger) *CareerPath {
	if log == nil {
		log = logger.NewNop()
	}
	return &CareerPath{generator: generator, cache: cache, logger: log}
}

// Explore returns career paths for the tuple, serving from cache when a
// fresh entry exists. The second return reports whether the result came
// from cache. Generation is only attempted on a miss; cache failures on
// either side degrade silently to generate-and-return.
func (u *CareerPath) Explore(ctx context.Context, in ExplorePathsInput) ([]path.CareerPath, bool, error) {
	if strings.TrimSpace(in.CurrentRole) == "" {
		return nil, false, ErrInvalidInput
	}
	if u.generator == nil {
		return nil, false, ErrInternal
	}

	key := CareerPathsCacheKey(in.CurrentRole, in.Skills, in.Tasks, in.Interests)

	if paths, ok := u.cache.Get(ctx, key); ok {
		u.logger.Info("career paths served from cache",
			zap.String("key", key), zap.Int("count", len(paths)))
		return paths, true, nil
	}

	paths, err := u.generator.GenerateCareerPaths(ctx, path.GenerationInput{
		CurrentRole: in.CurrentRole,
		Skills:      in.Skills,
		Tasks:       in.Tasks,
		Interests:   in.Interests,
	})
	if err != nil {
		u.logger.Error("career path generation failed", err, zap.String("key", key))
		return nil, false, ErrInternal
	}

	u.cache.Set(ctx, key, paths)

	return paths, false, nil
}
