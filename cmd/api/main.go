package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"conversational-task-manager/config"
	_ "conversational-task-manager/docs" // Swagger docs
	agentHTTP "conversational-task-manager/internal/agent/delivery/http"
	agentUC "conversational-task-manager/internal/agent/usecase"
	"conversational-task-manager/internal/db"
	"conversational-task-manager/internal/httpserver"
	"conversational-task-manager/internal/middleware"
	taskHTTP "conversational-task-manager/internal/task/delivery/http"
	taskSQLite "conversational-task-manager/internal/task/repository/sqlite"
	taskUC "conversational-task-manager/internal/task/usecase"
	userSQLite "conversational-task-manager/internal/user/repository/sqlite"
	userUC "conversational-task-manager/internal/user/usecase"
	"conversational-task-manager/pkg/gcalendar"
	"conversational-task-manager/pkg/log"
)

// @title       Conversational Task Manager API
// @description Multi-user task manager with a natural-language command router.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer database.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task domain
	taskRepo := taskSQLite.New(database, logger)
	taskUseCase := taskUC.New(logger, taskRepo, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)

	// 6. User directory
	userRepo := userSQLite.New(database, logger)
	directory := userUC.New(logger, userRepo)

	// 7. Command router
	router, err := agentUC.New(logger, taskUseCase, cfg.Agent.Timezone, cfg.Agent.StoreTimeout)
	if err != nil {
		logger.Error(ctx, "Failed to build command router: ", err)
		return
	}

	// 8. Middleware and HTTP handlers
	mw := middleware.New(logger, directory, middleware.Config{
		RateLimitPerMin: cfg.Middleware.RateLimitPerMin,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		TaskHandler:  taskHTTP.New(logger, taskUseCase),
		AgentHandler: agentHTTP.New(logger, router),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
