package main

import (
	"context"
	"hostel/config"
	"hostel/di"
	_ "hostel/docs"
	"hostel/infras/postgres"
	"hostel/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

//	@title						Hostel Management API
//	@version					1.0
//	@description				Rooms, allocations, room requests, complaints, fees and the mess menu of a student hostel.
//	@BasePath					/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key

const otelFlushTimeout = 5 * time.Second

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := postgres.Migrate(cfg, postgres.MigrateUp); err != nil {
			log.Fatal().Err(err).Msg("auto migration failed")
		}
	}

	app := di.InitializeApp()

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start background jobs")
	}

	app.HTTP.Serve()

	app.Scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), otelFlushTimeout)
	defer cancel()

	if err := app.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
