package main

import (
	"context"
	"fmt"

	"github.com/nirco-cloud/tripsync/internal/adapter"
	"github.com/nirco-cloud/tripsync/internal/config"
	"github.com/nirco-cloud/tripsync/internal/crypto"
	handler "github.com/nirco-cloud/tripsync/internal/handler/http"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/server"
	"github.com/nirco-cloud/tripsync/internal/service"
	"github.com/nirco-cloud/tripsync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tripsyncd")
	cfg, err := config.GetDaemonConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	remote := adapter.NewGithubDocumentClient(cfg.Remote, log)
	connectivity := adapter.NewConnectivityChecker(cfg.Remote.APIBaseURL)

	services := service.NewServices(cfg, storages, remote, connectivity, log)

	if cfg.Storage.LocationsFile != "" {
		count, err := services.Locations.ImportFile(ctx, cfg.Storage.LocationsFile)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Storage.LocationsFile).Msg("location catalog import failed")
		} else {
			log.Info().Int("records", count).Msg("location catalog loaded")
		}
	}

	syncJob := service.NewSyncJob(services.Sync, cfg.Workers.SyncInterval, log)
	syncJob.Start(ctx)
	defer syncJob.Stop()

	handlers := handler.NewHandler(services, crypto.NewPassphraseCipher(), version(cfg), log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func version(cfg *config.DaemonConfig) string {
	if cfg.App.Version != "" {
		return cfg.App.Version
	}
	return buildVersion
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
