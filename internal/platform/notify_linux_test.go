//go:build linux

package platform

import "testing"

func TestHints(t *testing.T) {
	h := hints(Options{})
	if got := h["category"].Value(); got != "transfer.complete" {
		t.Fatalf("category = %v", got)
	}
	if got := h["desktop-entry"].Value(); got != DefaultAppName {
		t.Fatalf("desktop-entry = %v", got)
	}
	if _, ok := h["image-path"]; ok {
		t.Fatalf("image-path set without an icon")
	}

	h = hints(Options{Category: "transfer", IconPath: "/tmp/p.png"})
	if got := h["category"].Value(); got != "transfer" {
		t.Fatalf("category = %v", got)
	}
	if got := h["image-path"].Value(); got != "/tmp/p.png" {
		t.Fatalf("image-path = %v", got)
	}
}
