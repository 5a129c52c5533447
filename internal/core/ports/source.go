// Package ports defines the core interfaces for the application.
package ports

import "context"

// ByteSource supplies raw script bytes for a given origin and path.
//
// Read returns domain.ErrNotFound when the origin is mounted but the path
// does not exist; any other error is treated as fatal by the caller. The
// core never assumes a specific storage medium behind an origin.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type ByteSource interface {
	Read(ctx context.Context, origin, path string) ([]byte, error)
}
