package http

import (
	"net/http"
)

func (h *Handler) getServiceVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
