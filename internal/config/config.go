package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/quizdraw/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save  bool
	Clear bool
	Copy  bool
}

// Log holds logging settings. An empty File logs to stderr only.
type Log struct {
	Level string
	File  string
}

// Config holds the application configuration.
type Config struct {
	Theme         string
	DataDir       string
	Store         string
	SnapshotScale float64
	CanvasWidth   int
	CanvasHeight  int
	Log           Log
	Notify        Notify
	Themes        map[string]*theme.Theme
}

const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:         "", // Default to empty to allow fallback to Env/Default
		Store:         "file",
		SnapshotScale: 1,
		CanvasWidth:   DefaultCanvasWidth,
		CanvasHeight:  DefaultCanvasHeight,
		Log:           Log{Level: "info"},
		Themes:        make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.DataDir != "" {
		fmt.Fprintf(&sb, "data_dir = %s\n", c.DataDir)
	}
	fmt.Fprintf(&sb, "store = %s\n", c.Store)
	fmt.Fprintf(&sb, "snapshot_scale = %s\n", strconv.FormatFloat(c.SnapshotScale, 'g', -1, 64))
	fmt.Fprintf(&sb, "canvas_width = %d\n", c.CanvasWidth)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.CanvasHeight)
	sb.WriteString("\n")

	sb.WriteString("[log]\n")
	fmt.Fprintf(&sb, "level = %s\n", c.Log.Level)
	if c.Log.File != "" {
		fmt.Fprintf(&sb, "file = %s\n", c.Log.File)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "clear = %v\n", c.Notify.Clear)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		theme.Format(&sb, c.Themes[name])
		sb.WriteString("\n")
	}

	return sb.String()
}
