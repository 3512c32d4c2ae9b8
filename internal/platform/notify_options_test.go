package platform

import (
	"testing"
	"time"
)

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if o.appName() != DefaultAppName || o.timeoutMillis() != 5000 {
		t.Fatalf("defaults = %q, %d", o.appName(), o.timeoutMillis())
	}
	if o.subtitle() != DefaultAppName || o.category() != "transfer.complete" {
		t.Fatalf("defaults = %q, %q", o.subtitle(), o.category())
	}
	o = Options{AppName: "Quiz", Subtitle: "Saved", Category: "transfer", Timeout: 2 * time.Second}
	if o.appName() != "Quiz" || o.timeoutMillis() != 2000 {
		t.Fatalf("overrides = %q, %d", o.appName(), o.timeoutMillis())
	}
	if o.subtitle() != "Saved" || o.category() != "transfer" {
		t.Fatalf("overrides = %q, %q", o.subtitle(), o.category())
	}
}
