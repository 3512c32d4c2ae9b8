package store

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// JPEGQuality is the encoder quality used for stored images.
const JPEGQuality = 85

// ImageStore keeps snapshot and attached images as JPEG files in
// <dir>/ImageStore with an in-memory cache in front.
type ImageStore struct {
	dir string
	log *zap.Logger

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewImageStore returns an image store under dataDir.
func NewImageStore(dataDir string, log *zap.Logger) *ImageStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageStore{
		dir:   filepath.Join(dataDir, "ImageStore"),
		log:   log,
		cache: map[string]image.Image{},
	}
}

// Load returns the image stored under key.
func (s *ImageStore) Load(key string) (image.Image, bool) {
	if !validKey(key) {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.cache[key]; ok {
		return img, true
	}
	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("open image", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		s.log.Warn("decode image", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	s.cache[key] = img
	return img, true
}

// Save encodes img as JPEG under key.
func (s *ImageStore) Save(key string, img image.Image) {
	if !validKey(key) || img == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = img
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		s.log.Warn("encode image", zap.String("key", key), zap.Error(err))
		return
	}
	if err := WriteFileAtomic(s.dir, filepath.Join(s.dir, key), buf.Bytes()); err != nil {
		s.log.Warn("write image", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes the image stored under key.
func (s *ImageStore) Delete(key string) {
	if !validKey(key) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, key)
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("delete image", zap.String("key", key), zap.Error(err))
	}
}
