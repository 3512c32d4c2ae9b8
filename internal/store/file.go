package store

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/drawing"
)

// FileStore keeps one JSON document per key in <dir>/DrawingStore.
type FileStore struct {
	dir string
	log *zap.Logger
}

// NewFileStore returns a store under dataDir. The directory is created on the
// first save.
func NewFileStore(dataDir string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{dir: filepath.Join(dataDir, "DrawingStore"), log: log}
}

// Dir returns the directory holding the drawing documents.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the drawing saved under key. Missing, unreadable and malformed
// documents all report false.
func (s *FileStore) Load(key string) (drawing.Drawing, bool) {
	if !validKey(key) {
		s.log.Warn("rejected drawing key", zap.String("key", key))
		return drawing.Drawing{}, false
	}
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("read drawing", zap.String("key", key), zap.Error(err))
		}
		return drawing.Drawing{}, false
	}
	d, err := drawing.Unmarshal(b)
	if err != nil {
		s.log.Warn("decode drawing", zap.String("key", key), zap.Error(err))
		return drawing.Drawing{}, false
	}
	return d, true
}

// Save writes d under key, replacing any earlier document atomically.
func (s *FileStore) Save(key string, d drawing.Drawing) {
	if !validKey(key) {
		s.log.Warn("rejected drawing key", zap.String("key", key))
		return
	}
	b, err := drawing.Marshal(d)
	if err != nil {
		s.log.Warn("encode drawing", zap.String("key", key), zap.Error(err))
		return
	}
	if err := WriteFileAtomic(s.dir, s.path(key), b); err != nil {
		s.log.Warn("write drawing", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes the document saved under key.
func (s *FileStore) Delete(key string) {
	if !validKey(key) {
		return
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("delete drawing", zap.String("key", key), zap.Error(err))
	}
}

// WriteFileAtomic writes b to path through a temporary file in dir so that
// readers never observe a partial document.
func WriteFileAtomic(dir, path string, b []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := bytes.NewReader(b).WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
