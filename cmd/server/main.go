// Package main initializes and starts the NextbiTe API server,
// setting up configuration, logging, the MongoDB connection,
// repositories, services, handlers, and routing.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nextbite/nextbite/internal/config"
	"github.com/nextbite/nextbite/internal/db"
	"github.com/nextbite/nextbite/internal/logger"
	"github.com/nextbite/nextbite/internal/repository"
	"github.com/nextbite/nextbite/internal/server/handler/http"
	"github.com/nextbite/nextbite/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Read .env if present, then parse flags and environment.
	_ = godotenv.Load()
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel, options.Env); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Refuse to start without a store address and a signing secret.
	if err := options.Validate(); err != nil {
		zapLogger.Fatal("invalid configuration", zap.Error(err))
	}

	// Initialize MongoDB connection and indexes.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongoDB, err := db.InitMongo(ctx, options.MongoURI, options.Database)
	cancel()
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Periodically clear expired password-reset tokens.
	db.StartResetTokenCleaner(context.Background(), mongoDB, time.Hour, zapLogger)

	// Initialize repositories for accounts, orders, and the catalog.
	userRepo := repository.NewMongoUserRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	catalogRepo := repository.NewMongoCatalogRepository(mongoDB)

	// Initialize business-logic services.
	tokens := service.NewTokenService(options.JWTSecret, 24*time.Hour)
	authService := service.NewAuthService(userRepo, nil, tokens)
	catalogService := service.NewCatalogService(catalogRepo, 5*time.Minute)
	orderService := service.NewOrderService(orderRepo, catalogService)

	// Create HTTP handlers for auth, order, and catalog endpoints.
	production := options.IsProduction()
	authHandler := &http.AuthHandler{
		AuthService: authService,
		FrontendURL: options.FrontendURL,
		Production:  production,
	}
	orderHandler := &http.OrderHandler{OrderService: orderService, Production: production}
	catalogHandler := &http.CatalogHandler{CatalogService: catalogService, Production: production}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, orderHandler, catalogHandler, tokens, options.FrontendURL, zapLogger)

	server := &nethttp.Server{
		Addr:         options.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
