package v1

import (
	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Dependencies carries the infrastructure the v1 routes are built on.
// Generator and Search may be nil when the corresponding API keys are
// not configured; the affected endpoints then return 500s instead of
// failing startup.
type Dependencies struct {
	Config    config.Config
	DB        database.DB
	Cache     usecase.KVCache
	Generator usecase.CareerPathGenerator
	Search    usecase.JobSearchClient
	Logger    logger.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc, log)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)

	pathCache := usecase.NewCareerPathCache(deps.Cache, log)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	onboardingUC := usecase.NewOnboardingUsecase(profileRepo)
	matchUC := usecase.NewJobMatchUsecase(jobRepo, profileRepo, log)
	pathUC := usecase.NewCareerPathUsecase(deps.Generator, pathCache, log)
	feedUC := usecase.NewJobFeedUsecase(jobRepo, deps.Search, deps.Cache, log)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(authUC)
	onboardingHandler := handler.NewOnboardingHandler(onboardingUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	pathHandler := handler.NewPathHandler(pathUC)
	feedHandler := handler.NewJobFeedHandler(feedUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	userHandler.RegisterRoutes(usersGroup)
	onboardingHandler.RegisterRoutes(usersGroup)

	jobsGroup := protected.Group("/jobs")
	matchHandler.RegisterRoutes(jobsGroup)
	feedHandler.RegisterRoutes(jobsGroup)

	pathsGroup := protected.Group("/paths")
	pathHandler.RegisterRoutes(pathsGroup)
}
