package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
data_dir = /tmp/quiz
store = sqlite
snapshot_scale = 2
canvas_width = 1024
canvas_height = "768"

[log]
level = debug
file = /tmp/quiz/quizdraw.log

[notify]
save = true
clear = false
copy = true

[theme.my_custom_theme]
CanvasBackground = #111111
MenuText: #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.DataDir != "/tmp/quiz" {
		t.Errorf("Expected data_dir '/tmp/quiz', got '%s'", cfg.DataDir)
	}
	if cfg.Store != "sqlite" || cfg.SnapshotScale != 2 {
		t.Errorf("store=%q scale=%v", cfg.Store, cfg.SnapshotScale)
	}
	if cfg.CanvasWidth != 1024 || cfg.CanvasHeight != 768 {
		t.Errorf("canvas = %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/quiz/quizdraw.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if !cfg.Notify.Save || cfg.Notify.Clear || !cfg.Notify.Copy {
		t.Errorf("notify = %+v", cfg.Notify)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.CanvasBackground.R != 0x11 || th.MenuText.R != 0xFF {
		t.Errorf("Unexpected theme colours: %+v", th)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store != "file" || cfg.SnapshotScale != 1 || cfg.CanvasWidth != DefaultCanvasWidth || cfg.Log.Level != "info" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"store = tape",
		"snapshot_scale = 0",
		"canvas_width = wide",
		"[notify]\nsave = maybe",
		"[log]\nlevel = loud",
		"[theme.x]\nMenuText = red",
	}
	for _, in := range tests {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
data_dir = /home/user/quiz
store = sqlite
snapshot_scale = 1.5

[log]
level = warn

[notify]
save = true
clear = true
copy = false

[theme.custom]
Name = custom
Background = #000000
MenuOverlay = #00000040
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Theme != cfg2.Theme || cfg.DataDir != cfg2.DataDir || cfg.Store != cfg2.Store {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.SnapshotScale != cfg2.SnapshotScale {
		t.Errorf("SnapshotScale mismatch: %v vs %v", cfg.SnapshotScale, cfg2.SnapshotScale)
	}
	if cfg.Log != cfg2.Log {
		t.Errorf("Log mismatch: %+v vs %+v", cfg.Log, cfg2.Log)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderPrefersOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.rc")
	if err := os.WriteFile(path, []byte("store = sqlite\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("1.0.0", path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != "sqlite" {
		t.Fatalf("Store = %q", cfg.Store)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.rc")
	cfg := New()
	cfg.Theme = "dark"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := NewLoader("", path).Load()
	if err != nil || loaded.Theme != "dark" {
		t.Fatalf("loaded = %+v, %v", loaded, err)
	}
}
