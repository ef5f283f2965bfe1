package config

import (
	"context"
	"time"

	"skillswitch-service/src/internal/delivery/http"
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/delivery/http/route"
	"skillswitch-service/src/internal/gateway/ai"
	"skillswitch-service/src/internal/gateway/identity"
	"skillswitch-service/src/internal/gateway/messaging"
	"skillswitch-service/src/internal/gateway/storage"
	"skillswitch-service/src/internal/repository"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/databases/mysql"
	kafkaPkg "skillswitch-service/src/pkg/kafka"
	"skillswitch-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	DB         mysql.DBInterface
	Gorm       *gorm.DB
	App        *fiber.App
	Log        log.Log
	Validate   *validator.Validate
	Config     *viper.Viper
	Producer   kafkaPkg.Producer
	Redis      redis.UniversalClient
	Geoservice *GeoService
	Generator  ai.Generator
	Identity   identity.Verifier
	Files      storage.FileLinker
}

// Bootstrap wires repositories, usecases and routes, and returns the scheduler for main to run.
func Bootstrap(config *BootstrapConfig) (*cron.Cron, error) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	walletRepository := repository.NewWalletRepository(config.DB)
	sessionRepository := repository.NewSessionRepository(config.DB)
	reviewRepository := repository.NewReviewRepository(config.Gorm)
	resourceRepository := repository.NewResourceRepository(config.Gorm)
	analytics := messaging.NewAnalyticsProducer(config.Producer, config.Config.GetString("kafka.topic.analytics"), config.Log)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	seeded, err := resourceRepository.SeedIfEmpty(seedCtx, usecase.SeedResources())
	cancel()
	if err != nil {
		config.Log.Error("bootstrap", err.Error(), "SeedIfEmpty", "")
	} else if seeded {
		config.Log.Info("bootstrap", "marketplace resources seeded", "SeedIfEmpty", "")
	}

	// setup use cases
	userUseCase := usecase.NewUserUseCase(
		config.Log,
		config.Validate,
		userRepository,
		walletRepository,
		config.Config,
		config.Redis,
		config.Identity,
		analytics,
	)
	tutorUseCase := usecase.NewTutorUseCase(
		config.Log,
		config.Validate,
		userRepository,
		config.Redis,
		usecase.NewTutorRanker(config.Generator, config.Log),
		analytics,
	)
	sessionUseCase := usecase.NewSessionUseCase(
		config.Log,
		config.Validate,
		userRepository,
		sessionRepository,
		config.Config,
		config.Redis,
		analytics,
	)
	safeZoneUseCase := usecase.NewSafeZoneUseCase(
		config.Log,
		config.Validate,
		config.Geoservice.Zones,
		config.Geoservice.DefaultLocation,
		config.Geoservice.Routes,
		analytics,
	)
	reviewUseCase := usecase.NewReviewUseCase(
		config.Log,
		config.Validate,
		userRepository,
		sessionRepository,
		reviewRepository,
		analytics,
	)
	marketplaceUseCase := usecase.NewMarketplaceUseCase(
		config.Log,
		config.Validate,
		resourceRepository,
		usecase.DefaultTools(),
		config.Files,
		analytics,
	)
	assistantUseCase := usecase.NewAssistantUseCase(
		config.Log,
		config.Validate,
		config.Generator,
		userRepository,
		sessionRepository,
	)

	// setup controller
	userController := http.NewUserController(userUseCase, assistantUseCase, config.Log)
	tutorController := http.NewTutorController(tutorUseCase, config.Log)
	sessionController := http.NewSessionController(sessionUseCase, config.Log)
	safeZoneController := http.NewSafeZoneController(safeZoneUseCase, config.Log)
	reviewController := http.NewReviewController(reviewUseCase, config.Log)
	marketplaceController := http.NewMarketplaceController(marketplaceUseCase, config.Log)
	assistantController := http.NewAssistantController(assistantUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config, config.Redis)
	routeConfig := route.RouteConfig{
		App:                   config.App,
		UserController:        userController,
		TutorController:       tutorController,
		SessionController:     sessionController,
		SafeZoneController:    safeZoneController,
		ReviewController:      reviewController,
		MarketplaceController: marketplaceController,
		AssistantController:   assistantController,
		AuthMiddleware:        authMiddleware,
	}
	routeConfig.Setup()

	return NewScheduler(config.Config, config.Log, sessionUseCase)
}
