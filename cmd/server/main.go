package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"calorietracker/docs"
	"calorietracker/internal/auth"
	"calorietracker/internal/cache"
	"calorietracker/internal/config"
	"calorietracker/internal/db"
	"calorietracker/internal/handler"
	"calorietracker/internal/router"
	"calorietracker/internal/service"
	"calorietracker/internal/vision"
)

// @title Calorie Tracker API
// @version 1.0
// @description Calorie tracking API with food and activity logging, daily and weekly summaries, and AI food photo analysis.
// @host localhost:8001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer store.Close(ctx)
	log.Printf("Storage backend: %s", cfg.DBDriver)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(store.Repos.Users, cacheClient)
	authService := service.NewAuthService(store.Repos.Users, userService, jwtService, tokenStore)
	ledgerService := service.NewLedgerService(store.Repos.Foods, store.Repos.Activities)
	summaryService := service.NewSummaryService(store.Repos.Foods, store.Repos.Activities)

	analyzer := vision.NewGeminiAnalyzer(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, food analysis returns placeholder estimates")
	}

	e := echo.New()
	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Profile:  handler.NewProfileHandler(userService),
		Ledger:   handler.NewLedgerHandler(ledgerService),
		Summary:  handler.NewSummaryHandler(summaryService),
		Analysis: handler.NewAnalysisHandler(analyzer),
	}, authService)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// swaggerURL accepts SWAGGER_HOST with or without a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/") + "/swagger/index.html"
}
