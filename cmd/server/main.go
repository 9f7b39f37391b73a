package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/handler"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/server"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/store"
	"github.com/MKhiriev/animal-catalog/internal/workers"
	"github.com/MKhiriev/animal-catalog/models"
)

const role = "animal-catalog-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger(role, "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var bgWorkers []workers.Worker
	if handlers.GRPC != nil {
		bgWorkers = append(bgWorkers, workers.NewHealthCheckWorker(handlers.GRPC, cfg.Workers.HealthInterval, log))
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(bgWorkers...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
