package notify

import (
	"errors"
	"image"
	"os"
	"testing"

	"github.com/example/quizdraw/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func captureSends(t *testing.T, err error) *[]sent {
	t.Helper()
	var got []sent
	orig := send
	send = func(title, body string, opts platform.Options) error {
		s := sent{title: title, body: body, opts: opts}
		if opts.IconPath != "" {
			_, statErr := os.Stat(opts.IconPath)
			s.iconExisted = statErr == nil
		}
		got = append(got, s)
		return err
	}
	t.Cleanup(func() { send = orig })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := captureSends(t, nil)
	n := New(DefaultPreferences(), nil)
	n.Save("q1", nil)
	n.Clear("q1")
	n.Copy("")
	if len(*got) != 0 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	var nilNotifier *Notifier
	nilNotifier.Copy("x")
}

func TestSaveIncludesPreview(t *testing.T) {
	got := captureSends(t, nil)
	n := New(DefaultPreferences(), nil)
	n.Enable(EventSave, true)
	n.Save("question 2", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.body != "Saved drawing for question 2" || s.title != "quizdraw" {
		t.Fatalf("notification = %+v", s)
	}
	if !s.iconExisted {
		t.Fatalf("preview icon missing while sending")
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Fatalf("preview not removed after sending")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("QUIZDRAW_NOTIFY_TITLE", "Quiz")
	t.Setenv("QUIZDRAW_NOTIFY_COPY_TEXT", "Clipboard now holds %s")
	got := captureSends(t, errors.New("no bus"))
	n := New(LoadPreferences(), nil)
	n.Enable(EventCopy, true)
	n.Copy("")
	if len(*got) != 1 || (*got)[0].body != "Clipboard now holds drawing" || (*got)[0].title != "Quiz" {
		t.Fatalf("notifications = %+v", *got)
	}
}

func TestClearUsesTransferCategory(t *testing.T) {
	got := captureSends(t, platform.ErrUnsupported)
	n := New(DefaultPreferences(), nil)
	n.Enable(EventClear, true)
	n.Clear("question 1")
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	if o := (*got)[0].opts; o.Category != "transfer" || o.Subtitle != "Drawing removed" {
		t.Fatalf("options = %+v", o)
	}
}
