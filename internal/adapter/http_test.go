package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consolekit/brandcfg/internal/layers"
)

// ── FetchBranding ─────────────────────────────────────────────────────────────

func TestFetchBranding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/branding/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"theme": "light", "title": "Acme", "supportEmail": "help@acme.io"}`))
	}))
	defer srv.Close()

	cli := NewBrandingClient(HTTPClientConfig{BaseURL: srv.URL})

	doc, err := cli.FetchBranding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "light", doc.Theme)
	assert.Equal(t, "Acme", doc.Title)
	assert.Equal(t, "help@acme.io", doc.Extra["supportEmail"])
}

func TestFetchBranding_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cli := NewBrandingClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := cli.FetchBranding(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchBranding_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	cli := NewBrandingClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := cli.FetchBranding(context.Background())
	assert.Error(t, err)
}

// ── FetchKey ──────────────────────────────────────────────────────────────────

func TestFetchKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/branding/theme", r.URL.Path)
		w.Write([]byte(`"light"`))
	}))
	defer srv.Close()

	cli := NewBrandingClient(HTTPClientConfig{BaseURL: srv.URL})

	raw, err := cli.FetchKey(context.Background(), "theme")
	require.NoError(t, err)
	assert.JSONEq(t, `"light"`, string(raw))
}

func TestFetchKey_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown branding key", http.StatusNotFound)
	}))
	defer srv.Close()

	cli := NewBrandingClient(HTTPClientConfig{BaseURL: srv.URL})

	raw, err := cli.FetchKey(context.Background(), "nope")
	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// ── FetchRemoteLayer ──────────────────────────────────────────────────────────

func TestFetchRemoteLayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"theme": "remote", "hideNav": true}`))
	}))
	defer srv.Close()

	remote, err := FetchRemoteLayer(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, layers.Layer{"theme": "remote", "hideNav": true}, remote)
}

func TestFetchRemoteLayer_NonObjectBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[1, 2]`))
	}))
	defer srv.Close()

	remote, err := FetchRemoteLayer(context.Background(), srv.URL, 5*time.Second)
	assert.Nil(t, remote)
	assert.Error(t, err)
}

func TestFetchRemoteLayer_Unreachable(t *testing.T) {
	remote, err := FetchRemoteLayer(context.Background(), "http://127.0.0.1:1/branding", time.Second)
	assert.Nil(t, remote)
	assert.Error(t, err)
}
