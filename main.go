package main

import (
	"log"

	"github.com/Sibyl1122/promptGenerator/config"
	"github.com/Sibyl1122/promptGenerator/internal/api"
	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"go.uber.org/zap"
)

// @title promptGenerator API
// @version 1.0
// @description Prompt console backend: prompts, templates, model configs, execution and prompt generation.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	services.Configure(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := database.ConnectRedis(cfg); err != nil {
		logger.Log.Warn("redis unavailable, running without cache", zap.String("addr", cfg.RedisFullAddr()), zap.Error(err))
		database.RedisClient = nil
	}

	if err := services.SeedDefaultTemplates(); err != nil {
		logger.Log.Fatal("failed to seed templates", zap.Error(err))
	}

	if !cfg.AuthEnabled() {
		logger.Log.Warn("JWT_SECRET is empty, API routes are open")
	}

	router := api.NewRouter(cfg)
	logger.Log.Info("server starting", zap.String("addr", cfg.ServerAddr))
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
