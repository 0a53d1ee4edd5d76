package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/consolekit/brandcfg/internal/logger"
)

// getBranding serves the full resolved branding document. The body was
// encoded once at startup, so the handler only copies bytes.
func (h *Handler) getBranding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(h.snapshot.JSON())
}

// getBrandingKey serves the resolved value of a single top-level key.
// Unknown keys yield 404 so frontends can distinguish "not configured" from
// a configured null.
func (h *Handler) getBrandingKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, ok := h.snapshot.Value(key)
	if !ok {
		http.Error(w, "unknown branding key", http.StatusNotFound)
		return
	}

	body, err := json.Marshal(value)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Str("key", key).Msg("encode branding value")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
