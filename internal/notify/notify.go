// Package notify sends desktop notifications after drawings are saved,
// cleared or copied.
package notify

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a drawing is persisted.
	EventSave Event = "save"
	// EventClear emits a notification when a stored drawing is removed
	// because the session ended empty.
	EventClear Event = "clear"
	// EventCopy emits a notification when a snapshot is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "quizdraw",
		Events: map[Event]EventPreference{
			EventSave:  {Template: "Saved drawing for %s"},
			EventClear: {Template: "Removed drawing for %s"},
			EventCopy:  {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("QUIZDRAW_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("QUIZDRAW_NOTIFY_SAVE_TEXT", EventSave)
	apply("QUIZDRAW_NOTIFY_CLEAR_TEXT", EventClear)
	apply("QUIZDRAW_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// send is replaced in tests.
var send = platform.Notify

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	log     *zap.Logger
}

// New creates a new Notifier using the provided preferences. log may be nil.
func New(prefs Preferences, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), log: log}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save announces a saved drawing with an optional snapshot preview.
func (n *Notifier) Save(question string, snapshot image.Image) {
	if !n.enabledFor(EventSave) {
		return
	}
	opts := platform.Options{AppName: n.prefs.Title, Subtitle: "Drawing saved"}
	if snapshot != nil {
		if path, cleanup, err := createPreview(snapshot); err != nil {
			n.log.Warn("notification preview", zap.Error(err))
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventSave, question, opts)
}

// Clear announces that an empty session removed the stored drawing.
func (n *Notifier) Clear(question string) {
	if !n.enabledFor(EventClear) {
		return
	}
	n.dispatch(EventClear, question, platform.Options{AppName: n.prefs.Title, Subtitle: "Drawing removed", Category: "transfer"})
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	n.dispatch(EventCopy, detail, platform.Options{AppName: n.prefs.Title, Subtitle: "Copied"})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	err := send(n.prefs.Title, body, opts)
	switch {
	case errors.Is(err, platform.ErrUnsupported):
		n.log.Debug("notification skipped", zap.String("event", string(event)))
	case err != nil:
		n.log.Warn("notification failed", zap.String("event", string(event)), zap.Error(err))
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "quizdraw-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}
