package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswitch-service/src/internal/config"
	"skillswitch-service/src/pkg/log"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// a local .env is optional; real deployments set SKILLSWITCH_* directly
	_ = godotenv.Load()

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "SKILLSWITCH_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("web.cors.allow_origins", "*")
	viperConfig.SetDefault("auth.jwt.ttl", "24h")
	viperConfig.SetDefault("pricing.platform_fee_percentage", 12.5)
	viperConfig.SetDefault("thirdparty.gemini.timeout", "15s")
	viperConfig.SetDefault("thirdparty.google.timeout", "15s")
	viperConfig.SetDefault("kafka.topic.analytics", "skillswitch-analytics")
	viperConfig.SetDefault("database.auto_migrate", true)
	viperConfig.SetDefault("sessions.pending_ttl", "0s")
	viperConfig.SetDefault("sessions.sweep_schedule", "@every 10m")
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	db := config.NewDatabase(viperConfig, logger)
	gormDB, err := config.NewGorm(viperConfig, db, logger)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to open gorm: %v", err), "main", "")
		os.Exit(1)
	}
	redisClient, err := config.NewRedis(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to connect redis: %v", err), "main", "")
		os.Exit(1)
	}
	geoService, err := config.NewGeoService(viperConfig, logger)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to init maps client: %v", err), "main", "")
		os.Exit(1)
	}
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: viperConfig.GetString("web.cors.allow_origins"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	scheduler, err := config.Bootstrap(&config.BootstrapConfig{
		DB:         db,
		Gorm:       gormDB,
		App:        app,
		Log:        logger,
		Validate:   validate,
		Config:     viperConfig,
		Producer:   producer,
		Redis:      redisClient,
		Geoservice: geoService,
		Generator:  config.NewGenerator(viperConfig, logger),
		Identity:   config.NewIdentityVerifier(viperConfig, logger),
		Files:      config.NewFileStorage(viperConfig, logger),
	})
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to schedule jobs: %v", err), "main", "")
		os.Exit(1)
	}
	scheduler.Start()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("main", "Server skillswitch-service is shutting down...", "graceful", "")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	<-scheduler.Stop().Done()

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing producer: %v", err), "graceful", "")
		}
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("main", fmt.Sprintf("Error closing redis: %v", err), "graceful", "")
	}
	if err := db.Close(); err != nil {
		logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
