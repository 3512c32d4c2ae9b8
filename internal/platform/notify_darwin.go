//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

func appleScript(title, body string, opts Options) string {
	return fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, opts.subtitle())
}

// Notify displays a notification through Notification Center.
func Notify(title, body string, opts Options) error {
	return exec.Command("osascript", "-e", appleScript(title, body, opts)).Run()
}
