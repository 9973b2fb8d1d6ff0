package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-keeper/internal/adapter"
	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/crypto"
	"github.com/MKhiriev/go-face-keeper/internal/handler"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/metrics"
	"github.com/MKhiriev/go-face-keeper/internal/server"
	"github.com/MKhiriev/go-face-keeper/internal/service"
	"github.com/MKhiriev/go-face-keeper/internal/store"
	"github.com/MKhiriev/go-face-keeper/internal/workers"
	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-face-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	faces, err := store.NewStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer faces.Close()

	oracle, err := adapter.NewHTTPEmbeddingOracle(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating embedding oracle")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	faceMetrics, err := metrics.New(metrics.Options{Registerer: registry, Gatherer: registry})
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	services, err := service.NewServices(service.Dependencies{
		FaceStore: faces,
		Oracle:    oracle,
		Cipher:    crypto.NewEmbeddingCipher(keyProvider(cfg.App)),
		Recorder:  faceMetrics,
		BuildInfo: buildInfo,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, faceMetrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(faces, faceMetrics, cfg.Workers, log)
	backgroundWorkers.Run()
	defer backgroundWorkers.Stop()

	srv.RunServer()
}

// keyProvider prefers a mounted key file over the passphrase.
func keyProvider(cfg config.App) crypto.KeyProvider {
	if cfg.EncryptionKeyFile != "" {
		return crypto.NewFileKeyProvider(cfg.EncryptionKeyFile)
	}
	return crypto.NewPassphraseKeyProvider(cfg.EncryptionSecret, cfg.EncryptionSalt)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
