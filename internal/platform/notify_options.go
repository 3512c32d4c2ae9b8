package platform

import (
	"errors"
	"time"
)

// DefaultAppName identifies quizdraw to the notification service.
const DefaultAppName = "quizdraw"

// ErrUnsupported is returned where the host has no notification service.
var ErrUnsupported = errors.New("desktop notifications are not supported on this platform")

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName is reported to the notification service. Empty means
	// DefaultAppName.
	AppName string
	// Subtitle is shown under the title where the platform has one.
	Subtitle string
	// Category is a freedesktop notification category such as
	// "transfer.complete". Empty means "transfer.complete".
	Category string
	// IconPath, when non-empty, points to an image file shown with the
	// notification.
	IconPath string
	// Timeout is how long the notification stays visible where the platform
	// allows it. Zero uses five seconds.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) subtitle() string {
	if o.Subtitle == "" {
		return o.appName()
	}
	return o.Subtitle
}

func (o Options) category() string {
	if o.Category == "" {
		return "transfer.complete"
	}
	return o.Category
}

func (o Options) timeoutMillis() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return int32(o.Timeout / time.Millisecond)
}
