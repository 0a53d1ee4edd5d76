// Package http implements the HTTP transport layer of the brandcfg service.
//
// It exposes route wiring, request handlers, and middleware for the
// read-only branding API. Request tracing and access logging are handled in
// this package before requests reach the handlers. The branding snapshot is
// resolved once at startup, so every handler here is a pure read.
package http
