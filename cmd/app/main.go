package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/cinemind/core/internal/app"
	"github.com/humanbelnik/cinemind/core/internal/config"
)

// @title Cinemind API
// @version 1.0
// @description Чат-ассистент для подбора фильмов: каталог, оценки, сохраненные фильмы и рекомендации
// @BasePath /api/v1
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	var handler slog.Handler
	if cfg.HTTP.Mode == "release" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Go(ctx, cfg, logger)
}
