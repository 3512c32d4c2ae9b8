// Package store persists drawings and snapshot images by key. Failures are
// logged and reported as a missing entry or a dropped write.
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/drawing"
)

// DrawingStore loads, saves and deletes drawings by key.
type DrawingStore interface {
	Load(key string) (drawing.Drawing, bool)
	Save(key string, d drawing.Drawing)
	Delete(key string)
}

// Backend names a DrawingStore implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend validates a backend name. An empty name selects BackendFile.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendFile:
		return BackendFile, nil
	case BackendSQLite:
		return BackendSQLite, nil
	}
	return "", fmt.Errorf("unknown store backend %q", s)
}

// Closer is implemented by stores that hold open resources.
type Closer interface {
	Close() error
}

// Open returns the drawing store for backend rooted at dir.
func Open(ctx context.Context, backend Backend, dir string, log *zap.Logger) (DrawingStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch backend {
	case "", BackendFile:
		return NewFileStore(dir, log), nil
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(dir, "quizdraw.db"), log)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

// validKey rejects keys that could escape the store directory.
func validKey(key string) bool {
	if key == "" || key == "." || strings.Contains(key, "..") {
		return false
	}
	return !strings.ContainsAny(key, `/\`+"\x00")
}
