package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.TrackingJobEnabled {
		jobManager := jobs.NewJobManager(app.CreateSyncShipmentStatusesCommandHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting background jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                  os.Getenv("HTTP_PORT"),
		HTTPAPIKey:                os.Getenv("HTTP_API_KEY"),
		DBHost:                    os.Getenv("DB_HOST"),
		DBPort:                    os.Getenv("DB_PORT"),
		DBUser:                    os.Getenv("DB_USER"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    os.Getenv("DB_NAME"),
		DBSslMode:                 os.Getenv("DB_SSLMODE"),
		FedexKey:                  os.Getenv("FEDEX_KEY"),
		FedexPassword:             os.Getenv("FEDEX_PASSWORD"),
		FedexAccountNumber:        os.Getenv("FEDEX_ACCOUNT_NUMBER"),
		FedexMeterNumber:          os.Getenv("FEDEX_METER_NUMBER"),
		FedexFreightAccountNumber: os.Getenv("FEDEX_FREIGHT_ACCOUNT_NUMBER"),
		FedexUseTestServer:        boolEnvVariable("FEDEX_USE_TEST_SERVER"),
		TrackingJobEnabled:        boolEnvVariable("TRACKING_JOB_ENABLED"),
	}
	return config
}

func boolEnvVariable(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return value
}

func postgresDSN(config cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateCreateShipmentNoteCommandHandler(),
		app.CreateCreateCarrierShipmentCommandHandler(),
		app.CreateBookCarrierShipmentCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateGetShipperQueryHandler(),
		app.CreateGetRecipientQueryHandler(),
		app.CreateGetDeliveryItemsQueryHandler(),
		app.CreateGetCarriersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e, httpadapter.APIKeyMiddleware(configs.HTTPAPIKey))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
