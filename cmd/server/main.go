package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/greenpark/cms/internal/config"
	"github.com/greenpark/cms/internal/db"
	"github.com/greenpark/cms/internal/handler"
	"github.com/greenpark/cms/internal/router"
	"github.com/greenpark/cms/internal/service"
	"github.com/greenpark/cms/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)
	gin.SetMode(cfg.GinMode)

	var gdb *gorm.DB
	gdb, err = db.Open(cfg.DatabaseURL)
	if err != nil {
		if !cfg.AllowNoDB {
			logger.Fatal().Err(err).Msg("failed to initialize database")
		}
		logger.Warn().Err(err).Msg("running without a database; queries return empty results")
		gdb = nil
	}

	if gdb != nil {
		users := service.NewUserService(gdb)
		if err := users.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure admin account")
		}
	}

	store, err := storage.New(cfg.Minio)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}
	if store == nil {
		logger.Warn().Msg("object storage not configured; uploads disabled")
	} else {
		if err := store.EnsureBucket(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure bucket")
		}
	}

	api := handler.NewAPI(gdb, store, cfg)
	r := router.New(api, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
