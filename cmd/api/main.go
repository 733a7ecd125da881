package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/planora/planora-backend/internal/config"
	"github.com/planora/planora-backend/internal/handler"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/internal/repository/memory"
	"github.com/planora/planora-backend/internal/repository/postgres"
	"github.com/planora/planora-backend/internal/service"
	"github.com/planora/planora-backend/pkg/database"
	"github.com/planora/planora-backend/pkg/logger"
	"github.com/planora/planora-backend/pkg/qrcode"
	"github.com/planora/planora-backend/pkg/token"
	"github.com/planora/planora-backend/pkg/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Environment == "development")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	repos, err := newRepositories(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize storage", zap.Error(err))
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	qrService := qrcode.NewService(cfg.PaymentBaseURL)
	validator := validation.New()

	// Services
	authService := service.NewAuthService(repos.Users, tokens)
	eventService := service.NewEventService(repos.Events, repos.Users, repos.Vendors, repos.Attendance)
	vendorService := service.NewVendorService(repos.Vendors)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator, zlog)
	eventHandler := handler.NewEventHandler(eventService, qrService, validator, zlog)
	vendorHandler := handler.NewVendorHandler(vendorService, eventService, validator, zlog)

	app := handler.NewApp(cfg, repos, tokens, authHandler, eventHandler, vendorHandler)

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.StorageDriver),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func newRepositories(cfg *config.Config) (*repository.Repositories, error) {
	if cfg.StorageDriver == "postgres" {
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepositories(db), nil
	}
	// default: volatile in-process store, all data is lost on restart
	return memory.NewRepositories(), nil
}
