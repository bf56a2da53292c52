package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/gc"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/quota"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-note-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	cipher, err := crypto.NewBlobCipher(crypto.Format(cfg.App.BlobFormat))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob cipher")
	}

	guard := quota.NewGuard(storages.Counters, cfg.Quota)
	sweeper := gc.NewSweeper(storages.Blobs, guard, cfg.GC)

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.App.Version != "" {
		info.Version = cfg.App.Version
	}

	services, err := service.NewServices(storages, cipher, guard, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, sweeper, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var jobs []workers.Worker
	if cfg.Workers.GCSchedule != "" {
		gcWorker, err := workers.NewGCWorker(cfg.Workers.GCSchedule, sweeper, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating gc worker")
		}
		jobs = append(jobs, gcWorker)
	}
	bg := workers.NewWorkers(jobs...)
	bg.Run()
	defer bg.Stop()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
