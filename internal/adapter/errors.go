package adapter

import "errors"

var (
	// ErrKeyNotFound indicates that the requested top-level branding key is
	// not present in the server's resolved document.
	ErrKeyNotFound = errors.New("branding key not found")
)
