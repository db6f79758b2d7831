package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9jakitchen/backend/config"
	"github.com/9jakitchen/backend/internal/api"
	"github.com/9jakitchen/backend/internal/database"
	"github.com/9jakitchen/backend/internal/logger"
	"github.com/9jakitchen/backend/internal/server"
	"github.com/9jakitchen/backend/internal/service"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Init("info", "json")
		logger.Fatal("failed to load config", logger.Err(err))
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", logger.Err(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", logger.Err(err))
	}

	deps := api.Services{
		Auth:     service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireDuration()),
		Recipe:   service.NewRecipeService(db),
		Favorite: service.NewFavoriteService(db),
		Profile:  service.NewProfileService(db),
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", logger.Err(err))
	} else {
		deps.Redis = redisClient
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logger.Warn("s3 unavailable, image uploads disabled", logger.Err(err))
	} else {
		deps.Uploader = service.NewImageService(s3cfg)
	}

	srv := server.New(cfg, deps)

	go func() {
		logger.Info("server listening", logger.String("addr", cfg.Server.Addr()))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", logger.Err(err))
	}
}
