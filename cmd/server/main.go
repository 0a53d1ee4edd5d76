package main

import (
	"context"
	"fmt"

	"github.com/consolekit/brandcfg/internal/adapter"
	"github.com/consolekit/brandcfg/internal/branding"
	"github.com/consolekit/brandcfg/internal/config"
	handler "github.com/consolekit/brandcfg/internal/handler/http"
	"github.com/consolekit/brandcfg/internal/layers"
	"github.com/consolekit/brandcfg/internal/logger"
	"github.com/consolekit/brandcfg/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("brandcfg-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("brandcfg-server", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	// The remote override layer is fetched once, before resolution.
	var remote layers.Layer
	if cfg.Branding.RemoteURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Branding.RemoteTimeout)
		remote, err = adapter.FetchRemoteLayer(ctx, cfg.Branding.RemoteURL, cfg.Branding.RemoteTimeout)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("error fetching remote branding layer")
		}
	}

	snapshot, err := branding.Load(branding.Sources{
		FilePath: cfg.Branding.FilePath,
		Remote:   remote,
		Runtime:  []byte(cfg.Branding.RuntimeJSON),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving branding")
	}

	log.Info().Any("branding", snapshot.Doc()).Msg("branding resolved")

	handlers := handler.NewHandler(snapshot, buildVersion, log)
	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
