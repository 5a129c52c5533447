// Package source provides the byte source adapter reading script content
// from mounted filesystems, one mount per origin.
package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ByteSource = (*Mounts)(nil)

// Mounts is a ByteSource backed by a set of named filesystem mounts. Each
// origin maps to one fs.FS; reads address "origin, slash-separated path".
type Mounts struct {
	mu     sync.RWMutex
	mounts map[string]fs.FS
}

// NewMounts creates an empty mount table.
func NewMounts() *Mounts {
	return &Mounts{mounts: make(map[string]fs.FS)}
}

// Mount attaches a filesystem under the given origin, replacing any previous
// mount for that origin.
func (m *Mounts) Mount(origin string, fsys fs.FS) {
	m.mu.Lock()
	m.mounts[origin] = fsys
	m.mu.Unlock()
}

// MountDir attaches a directory on the host filesystem under the given origin.
func (m *Mounts) MountDir(origin, dir string) {
	m.Mount(origin, os.DirFS(dir))
}

// Read returns the content of path within origin. A missing file reports
// domain.ErrNotFound so callers can keep probing; an unmounted origin is a
// configuration mistake and reports domain.ErrUnknownOrigin.
func (m *Mounts) Read(_ context.Context, origin, path string) ([]byte, error) {
	m.mu.RLock()
	fsys, ok := m.mounts[origin]
	m.mu.RUnlock()

	if !ok {
		return nil, zerr.With(domain.ErrUnknownOrigin, "origin", origin)
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.With(domain.ErrNotFound, "origin", origin), "path", path)
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to read script"), "origin", origin), "path", path)
	}
	return content, nil
}

// Origins returns the currently mounted origin names, unordered.
func (m *Mounts) Origins() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	origins := make([]string, 0, len(m.mounts))
	for origin := range m.mounts {
		origins = append(origins, origin)
	}
	return origins
}
