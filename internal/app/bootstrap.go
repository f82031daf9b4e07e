package app

import (
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app, returning a cleanup
// func that releases the container's handles.
func Bootstrap(cfg config.Config, log logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	registry := routes.NewRegistry(health, v1.Dependencies{
		Config:    c.Config,
		DB:        c.DB,
		Cache:     c.Cache,
		Generator: c.Generator,
		Search:    c.Search,
		Logger:    c.Logger,
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
