// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

// Package adapter implements outbound HTTP integrations of the brandcfg
// service: the client used to read a resolved document from a running
// server, and the one-shot fetch of a remote override layer at startup.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/consolekit/brandcfg/internal/layers"
	"github.com/consolekit/brandcfg/models"
)

// HTTPClientConfig configures the branding client transport.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type brandingClient struct {
	client *resty.Client
}

func NewBrandingClient(cfg HTTPClientConfig) BrandingClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &brandingClient{client: cli}
}

func (c *brandingClient) FetchBranding(ctx context.Context) (models.Branding, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/branding/")
	if err != nil {
		return models.Branding{}, fmt.Errorf("branding request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Branding{}, err
	}

	var doc models.Branding
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Branding{}, fmt.Errorf("decode branding response: %w", err)
	}

	return doc, nil
}

func (c *brandingClient) FetchKey(ctx context.Context, key string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/branding/" + key)
	if err != nil {
		return nil, fmt.Errorf("branding key request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// FetchRemoteLayer performs the one-shot startup fetch of a remote override
// layer. The endpoint must return a single JSON object.
//
// It is called exactly once before resolution, never again afterwards, so
// the resolved snapshot never observes later changes of the remote source.
func FetchRemoteLayer(ctx context.Context, url string, timeout time.Duration) (layers.Layer, error) {
	cli := resty.New().SetTimeout(timeout)

	resp, err := cli.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("remote branding layer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var remoteLayer layers.Layer
	if err = json.Unmarshal(resp.Body(), &remoteLayer); err != nil {
		return nil, fmt.Errorf("decode remote branding layer: %w", err)
	}

	return remoteLayer, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}
