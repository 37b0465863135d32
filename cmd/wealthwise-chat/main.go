package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wealthwise-chat/internal/api"
	"wealthwise-chat/internal/api/handlers"
	"wealthwise-chat/internal/repository"
	"wealthwise-chat/internal/service"
	"wealthwise-chat/pkg/auth"
	"wealthwise-chat/pkg/config"
	"wealthwise-chat/pkg/logger"
	"wealthwise-chat/pkg/postgres"

	"go.uber.org/zap"
)

// @title WealthWise Finance Chat API
// @version 1.0
// @description Finance-education chat service grounded in the WealthWise Academy platform data

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting WealthWise finance chat service",
		zap.String("strategy", cfg.Chat.Strategy),
	)

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	courseRepo := repository.NewCourseRepository(db, appLogger)
	expertRepo := repository.NewExpertRepository(db, appLogger)
	videoRepo := repository.NewVideoRepository(db, appLogger)
	bookingRepo := repository.NewBookingRepository(db, appLogger)

	// JWT manager for user-scoped endpoints
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Services
	contextService := service.NewContextService(courseRepo, expertRepo, videoRepo, bookingRepo, appLogger)
	catalogService := service.NewCatalogService(courseRepo, expertRepo, videoRepo, bookingRepo, appLogger)

	var responder service.Responder
	switch cfg.Chat.Strategy {
	case config.StrategyCompletion:
		responder = service.NewCompletionResponder(&cfg.OpenAI, appLogger)
	default:
		responder = service.NewTemplateResponder(appLogger)
	}

	chatService := service.NewChatService(contextService, responder, appLogger)

	// Handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, appLogger)
	bookingHandler := handlers.NewBookingHandler(catalogService, appLogger)
	healthHandler := handlers.NewHealthHandler(db, appLogger)

	app := api.SetupRouter(chatHandler, catalogHandler, bookingHandler, healthHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
