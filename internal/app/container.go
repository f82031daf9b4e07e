package app

import (
	"context"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/infrastructure/ai/gemini"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/jobsearch"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/usecase"
)

// Container owns every long-lived infrastructure handle. Generator and
// Search are nil when their API keys are not configured; the app still
// serves auth, onboarding and matching.
type Container struct {
	Config    config.Config
	Logger    logger.Logger
	DB        database.DB
	Cache     *cache.Redis
	Generator usecase.CareerPathGenerator
	Search    usecase.JobSearchClient
}

func NewContainer(cfg config.Config, log logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.RunMigrations {
		if err := migration.Run(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("database migrations applied")
	}

	redisCache := cache.NewRedis(cfg.Redis, log)

	c := &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  redisCache,
	}

	if cfg.Gemini.APIKey != "" {
		gen, err := gemini.NewGenerator(ctx, cfg.Gemini, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		c.Generator = gen
	} else {
		log.Warn("GEMINI_API_KEY not set, career path generation disabled")
	}

	if cfg.JobSearch.APIKey != "" {
		search, err := jobsearch.NewHTTPClient(cfg.JobSearch, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		c.Search = search
	} else {
		log.Warn("JOBSEARCH_API_KEY not set, job feed refresh disabled")
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("closing redis client failed")
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
