// Package branding assembles the branding document served to web frontends.
//
// The document is resolved exactly once at startup from ordered sources
// (later sources override earlier ones per top-level key):
//  1. Built-in defaults
//  2. Static override file (JSON on disk)
//  3. Remote override layer (fetched by the caller, passed in)
//  4. Runtime-injected layer (raw JSON read once from the environment by the
//     caller, passed in)
//
// Missing optional sources count as empty layers. The main entry point is
// [Load], which returns an immutable [Snapshot].
package branding
