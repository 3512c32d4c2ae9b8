package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedThemesParse(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	for _, name := range Names() {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("theme %q reports name %q", name, th.Name)
		}
	}
	dark, _ := l.Load("dark")
	if dark.MenuOverlay != (color.RGBA{0, 0, 0, 0x80}) {
		t.Fatalf("MenuOverlay = %v", dark.MenuOverlay)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	body := "Name: mine\ncanvasbackground: #102030\n"
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, SystemDir: t.TempDir()}
	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.CanvasBackground != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Fatalf("CanvasBackground = %v", th.CanvasBackground)
	}
	if th.MenuText != Default().MenuText {
		t.Fatalf("missing keys should keep defaults")
	}
	if _, err := l.Load("absent"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := Default()
	src.Name = "copy"
	src.MenuHover = color.RGBA{1, 2, 3, 4}
	var buf bytes.Buffer
	if err := Format(&buf, src); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *got != *src {
		t.Fatalf("round trip mismatch:\n%s", buf.String())
	}
}

func TestParseColor(t *testing.T) {
	if _, err := ParseColor("123456"); err == nil {
		t.Errorf("expected error without #")
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Errorf("expected error for short hex")
	}
	c, err := ParseColor("#FF3B30")
	if err != nil || c != (color.RGBA{255, 59, 48, 255}) {
		t.Errorf("ParseColor = %v, %v", c, err)
	}
}
