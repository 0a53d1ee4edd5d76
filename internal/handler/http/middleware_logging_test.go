package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consolekit/brandcfg/internal/branding"
	"github.com/consolekit/brandcfg/internal/logger"
)

// TestWithLogging_EmitsAccessEntry verifies that one access log entry with
// method, uri, status, and trace_id is written per request.
func TestWithLogging_EmitsAccessEntry(t *testing.T) {
	snap, err := branding.Load(branding.Sources{})
	require.NoError(t, err)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	h := NewHandler(snap, "1.2.3", log)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/branding/", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	last := lines[len(lines)-1]

	var entry map[string]any
	require.NoError(t, json.Unmarshal(last, &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/branding/", entry["uri"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.NotEmpty(t, entry["trace_id"])
	assert.NotZero(t, entry["size"])
}

// TestResponseWriter_RecordsStatusAndSize exercises the decorator directly.
func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	lw.WriteHeader(http.StatusNotFound)
	n, err := lw.Write([]byte("missing"))

	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, http.StatusNotFound, lw.status)
	assert.Equal(t, 7, lw.size)
}

// TestResponseWriter_ImplicitOK verifies that a Write without an explicit
// WriteHeader records 200.
func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	_, err := lw.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, lw.status)
}
