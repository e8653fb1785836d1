package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"todoapp/config"
	"todoapp/internal/api"
	"todoapp/internal/db"
	"todoapp/internal/httpserver"
	"todoapp/internal/ratelimit"
	"todoapp/internal/redisclient"
	"todoapp/internal/repository"
	authsvc "todoapp/internal/service/auth"
	tasksvc "todoapp/internal/service/task"
	"todoapp/internal/util"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(context.Background(), dbConn, logger); err != nil {
		logger.Fatal("Schema bootstrap failed", zap.Error(err))
	}

	// Init Redis-backed limiter for the credential endpoints
	rdb := redisclient.New(cfg.Redis)
	defer rdb.Close()
	limiter := ratelimit.NewLimiter(rdb, logger, 10, time.Minute)

	// Token service
	tokens := util.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireDays)*24*time.Hour)

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	taskRepo := repository.NewTaskRepository(dbConn, logger)

	// Init Services
	authService := authsvc.NewService(userRepo, tokens)
	taskService := tasksvc.NewService(taskRepo)

	// Init Handlers
	authHandler := api.NewAuthHandler(authService, logger)
	taskHandler := api.NewTaskHandler(taskService, logger)

	// Router
	router := httpserver.NewRouter(authHandler, taskHandler, tokens, limiter, dbConn)

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
