package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ccc-smartassist/internal/api"
	"ccc-smartassist/internal/api/handlers"
	"ccc-smartassist/internal/repository"
	"ccc-smartassist/internal/service"
	"ccc-smartassist/pkg/auth"
	"ccc-smartassist/pkg/config"
	"ccc-smartassist/pkg/logger"
	"ccc-smartassist/pkg/postgres"

	"go.uber.org/zap"
)

// @title CCC SmartAssist API
// @version 1.0
// @description Campus support assistant: rule, LLM and offline-fallback chat resolution plus content management.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting CCC SmartAssist service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	ruleRepo := repository.NewRuleRepository(db, appLogger)
	sessionRepo := repository.NewSessionRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)
	faqRepo := repository.NewFAQRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	geminiService := service.NewGeminiService(&cfg.Gemini, appLogger)
	chatService := service.NewChatService(
		ruleRepo, knowledgeRepo, settingsRepo, geminiService, sessionRepo,
		cfg.Resolver.DegradeMode, appLogger,
	)
	pdfService := service.NewPDFService(appLogger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, pdfService, appLogger)
	ruleService := service.NewRuleService(ruleRepo, appLogger)
	faqService := service.NewFAQService(faqRepo, appLogger)
	sessionService := service.NewSessionService(sessionRepo, appLogger)
	adminService := service.NewAdminService(userRepo, knowledgeRepo, ruleRepo, sessionRepo, settingsRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService, appLogger)
	ruleHandler := handlers.NewRuleHandler(ruleService, appLogger)
	faqHandler := handlers.NewFAQHandler(faqService, appLogger)
	sessionHandler := handlers.NewSessionHandler(sessionService, appLogger)
	adminHandler := handlers.NewAdminHandler(adminService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler, chatHandler, knowledgeHandler, ruleHandler,
		faqHandler, sessionHandler, adminHandler,
		jwtManager, appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
