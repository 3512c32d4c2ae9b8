// Package clipboard publishes rendered drawings and question text to the
// system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"runtime"
	"sync"
)

var (
	// ErrUnsupported is returned by builds without a clipboard backend.
	ErrUnsupported = errors.New("clipboard operations require cgo support on this platform")

	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

	initOnce sync.Once
	initErr  error
)

// hasDisplay reports whether a clipboard owner can exist. Only X11 and
// Wayland sessions need a display variable.
func hasDisplay() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = backendInit()
	})
	return initErr
}

// WriteImage encodes img as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	backendWrite(formatImage, buf.Bytes())
	return nil
}

// WriteText publishes s to the clipboard.
func WriteText(s string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	backendWrite(formatText, []byte(s))
	return nil
}
