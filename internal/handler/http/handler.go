package http

import (
	"github.com/consolekit/brandcfg/internal/branding"
	"github.com/consolekit/brandcfg/internal/logger"
)

type Handler struct {
	snapshot *branding.Snapshot
	version  string

	logger *logger.Logger
}

func NewHandler(snapshot *branding.Snapshot, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		snapshot: snapshot,
		version:  version,
		logger:   logger,
	}
}
