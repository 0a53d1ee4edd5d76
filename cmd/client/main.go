package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/consolekit/brandcfg/internal/adapter"
	"github.com/consolekit/brandcfg/internal/branding"
	"github.com/consolekit/brandcfg/internal/config"
	"github.com/consolekit/brandcfg/internal/logger"
)

func main() {
	log := logger.NewLogger("brandcfg-client", "info")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting client configs")
	}

	if cfg.Local {
		runLocal(cfg, log)
		return
	}

	runRemote(cfg, log)
}

// runLocal resolves the branding document in-process from the same override
// sources the server uses, without contacting a server.
func runLocal(cfg *config.ClientConfig, log *logger.Logger) {
	snapshot, err := branding.Load(branding.Sources{
		FilePath: cfg.BrandingFile,
		Runtime:  []byte(cfg.RuntimeJSON),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving branding locally")
	}

	if cfg.Key != "" {
		value, ok := snapshot.Value(cfg.Key)
		if !ok {
			log.Fatal().Str("key", cfg.Key).Msg("unknown branding key")
		}
		printJSON(value, log)
		return
	}

	printJSON(snapshot.Layer(), log)
}

// runRemote fetches the resolved document from a running server.
func runRemote(cfg *config.ClientConfig, log *logger.Logger) {
	cli := adapter.NewBrandingClient(adapter.HTTPClientConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	if cfg.Key != "" {
		raw, err := cli.FetchKey(ctx, cfg.Key)
		if err != nil {
			log.Fatal().Err(err).Str("key", cfg.Key).Msg("error fetching branding key")
		}
		fmt.Println(string(raw))
		return
	}

	doc, err := cli.FetchBranding(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error fetching branding")
	}

	printJSON(doc, log)
}

func printJSON(v any, log *logger.Logger) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding branding")
	}

	fmt.Println(string(pretty))
}
