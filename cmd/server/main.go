package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(cfg.App.Environment)

	bootstrap, cleanup, err := app.Bootstrap(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to bootstrap app", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			zlog.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zlog.Fatal("invalid HTTP port", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	zlog.Info("server listening", zap.String("addr", addr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("server error", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			zlog.Warn("shutdown error", zap.Error(err))
		}
	}
}
