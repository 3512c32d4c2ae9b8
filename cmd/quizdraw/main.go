package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/config"
	"github.com/example/quizdraw/internal/logging"
	"github.com/example/quizdraw/internal/notify"
	"github.com/example/quizdraw/internal/quiz"
	"github.com/example/quizdraw/internal/store"
	"github.com/example/quizdraw/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	notifier    *notify.Notifier
	log         *zap.Logger
	saveAlerts  bool
	clearAlerts bool
	copyAlerts  bool
	themeName   string
	dataDir     string
	storeName   string
	logLevel    string
	activeTheme *theme.Theme

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

// subcommand returns a copy of r named for a nested command.
func (r *root) subcommand(name string) *root {
	sub := *r
	sub.fs = nil
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg)
}

func newRootWithConfig(cfg *config.Config) *root {
	r := &root{
		fs:      flag.NewFlagSet("quizdraw", flag.ExitOnError),
		program: "quizdraw",
		config:  cfg,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a drawing")
	r.fs.BoolVar(&r.clearAlerts, "notify-clear", cfg.Notify.Clear, "show a desktop notification after an empty session removes a drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default. Empty flag values fall back in setup.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark or a [theme.<name>] section)")
	r.fs.StringVar(&r.dataDir, "data-dir", "", "directory holding questions, score, drawings and images")
	r.fs.StringVar(&r.storeName, "store", "", "drawing store backend (file, sqlite)")
	r.fs.StringVar(&r.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	r.fs.Usage = usageFunc(r)
	return r
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// setup resolves the flag, environment and config layers into the logger,
// notifier, theme and data directory used by every command.
func (r *root) setup() error {
	level := firstNonEmpty(r.logLevel, r.config.Log.Level)
	log, err := logging.New(logging.Options{Level: level, File: r.config.Log.File, Console: r.stderr})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	r.log = log

	r.notifier = notify.New(notify.LoadPreferences(), log)
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventClear, r.clearAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)

	r.dataDir = firstNonEmpty(r.dataDir, os.Getenv("QUIZDRAW_DATA_DIR"), r.config.DataDir, config.DefaultDataDir())
	r.storeName = firstNonEmpty(r.storeName, r.config.Store)

	themeName := firstNonEmpty(r.themeName, os.Getenv("QUIZDRAW_THEME"), r.config.Theme)
	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		r.activeTheme = cfgTheme
		return nil
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		if themeName != "" && themeName != "default" {
			log.Warn("theme not loaded, using default", zap.String("theme", themeName), zap.Error(err))
		}
		t = theme.Default()
	}
	r.activeTheme = t
	return nil
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if err := r.setup(); err != nil {
		return err
	}
	defer r.log.Sync() //nolint:errcheck
	return r.dispatch(r.fs.Args())
}

func (r *root) dispatch(args []string) error {
	if len(args) < 1 {
		return &UsageError{of: r}
	}
	cmdName := args[0]
	subArgs := args[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "questions":
		cmd, err = parseQuestionsCmd(subArgs, r)
	case "quiz":
		cmd, err = parseQuizCmd(subArgs, r)
	case "score":
		cmd, err = parseScoreCmd(subArgs, r)
	case "snapshot":
		cmd, err = parseSnapshotCmd(subArgs, r)
	case "copy":
		cmd, err = parseCopyCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// openBank wires the drawing store, image store and score into the question
// bank. The returned func releases the drawing store.
func (r *root) openBank() (*quiz.Bank, func(), error) {
	backend, err := store.ParseBackend(r.storeName)
	if err != nil {
		return nil, nil, err
	}
	drawings, err := store.Open(context.Background(), backend, r.dataDir, r.log)
	if err != nil {
		return nil, nil, fmt.Errorf("open drawing store: %w", err)
	}
	release := func() {
		if c, ok := drawings.(store.Closer); ok {
			if err := c.Close(); err != nil {
				r.log.Warn("close drawing store", zap.Error(err))
			}
		}
	}
	score := quiz.LoadScore(r.dataDir, r.log)
	bank := quiz.LoadBank(r.dataDir,
		quiz.WithScore(score),
		quiz.WithDrawings(drawings),
		quiz.WithImages(store.NewImageStore(r.dataDir, r.log)),
		quiz.WithBankLogger(r.log),
	)
	return bank, release, nil
}

// resolveQuestion accepts a 1-based position in the bank or a question id.
func resolveQuestion(bank *quiz.Bank, ref string) (quiz.NumericQuestion, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return quiz.NumericQuestion{}, errors.New("question is required")
	}
	if n, err := strconv.Atoi(ref); err == nil {
		q, ok := bank.Get(n - 1)
		if !ok {
			return quiz.NumericQuestion{}, fmt.Errorf("no question at position %d", n)
		}
		return q, nil
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return quiz.NumericQuestion{}, fmt.Errorf("question %q is neither a position nor an id", ref)
	}
	i, ok := bank.Index(id)
	if !ok {
		return quiz.NumericQuestion{}, fmt.Errorf("question %s not found", id)
	}
	q, _ := bank.Get(i)
	return q, nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
