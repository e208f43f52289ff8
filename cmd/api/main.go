package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-profile-backend/config"
	_ "go-profile-backend/docs" // Important for Swagger
	"go-profile-backend/internal/authz"
	v1 "go-profile-backend/internal/delivery/http/v1"
	"go-profile-backend/internal/repository/postgres"
	"go-profile-backend/internal/usecase"
	"go-profile-backend/pkg/database"
	"go-profile-backend/pkg/logger"
	"go-profile-backend/pkg/redis"
	"go-profile-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           Employee Profile API
// @version         1.0
// @description     Multi-tenant employee profile backend with ownership-based authorization.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting profile backend", "port", cfg.Port)

	// 3. Setup Database
	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)

	// 5. Setup Tokens and Revocation Store
	tokens := token.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	var revocations token.RevocationStore
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory token revocation", "error", err)
		revocations = token.NewMemoryRevocationStore()
	} else {
		revocations = token.NewRedisRevocationStore(redis.Client())
	}

	// 6. Setup UseCases
	validate := validator.New()
	policy := authz.OwnerOrReadOnly{}

	authUC := usecase.NewAuthUsecase(userRepo, tokens, revocations, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, skillRepo, educationRepo, certificationRepo, projectRepo, policy, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo, policy, validate)
	educationUC := usecase.NewEducationUsecase(educationRepo, profileRepo, policy, validate)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo, profileRepo, policy, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, profileRepo, policy, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		ProfileUC:       profileUC,
		SkillUC:         skillUC,
		EducationUC:     educationUC,
		CertificationUC: certificationUC,
		ProjectUC:       projectUC,
		Tokens:          tokens,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
