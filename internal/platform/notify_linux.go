//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
)

// hints are the freedesktop notification hints for o.
func hints(o Options) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"category":      dbus.MakeVariant(o.category()),
		"desktop-entry": dbus.MakeVariant(o.appName()),
		"urgency":       dbus.MakeVariant(byte(0)),
	}
	if o.IconPath != "" {
		h["image-path"] = dbus.MakeVariant(o.IconPath)
	}
	return h
}

// Notify sends a notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	if opts.Subtitle != "" {
		body = opts.Subtitle + "\n" + body
	}
	call := conn.Object(notifyDest, notifyPath).Call(notifyDest+".Notify", 0,
		opts.appName(), uint32(0), opts.IconPath, title, body, []string{}, hints(opts), opts.timeoutMillis())
	return call.Err
}
