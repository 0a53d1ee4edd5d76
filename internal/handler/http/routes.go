package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/branding/", h.getBranding)
	router.Get("/api/branding/{key}", h.getBrandingKey)
	router.Get("/api/version/", h.getServiceVersion)

	return router
}
