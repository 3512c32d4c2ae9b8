package main

import (
	"errors"
	"flag"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/app"
	"github.com/example/quizdraw/internal/clipboard"
	"github.com/example/quizdraw/internal/drawing"
	"github.com/example/quizdraw/internal/quiz"
)

// runWindowFn shows the drawing window; tests replace it to drive the
// session directly.
var runWindowFn = func(w *app.Window, existing *drawing.Drawing) { w.Run(existing) }

type drawCmd struct {
	*root
	fs       *flag.FlagSet
	question string
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r.subcommand("draw"), fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.question, "question", "", "question position (from 1) or id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if d.question == "" && fs.NArg() > 0 {
		d.question = fs.Arg(0)
	}
	if d.question == "" {
		return nil, &UsageError{of: d}
	}
	return d, nil
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

// newCanvas builds a canvas sized and coloured from the configuration.
func (r *root) newCanvas() *drawing.Canvas {
	w, h := r.config.CanvasWidth, r.config.CanvasHeight
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	scale := r.config.SnapshotScale
	if scale <= 0 {
		scale = 1
	}
	return drawing.NewCanvas(
		drawing.WithSize(w, h),
		drawing.WithSnapshotScale(scale),
		drawing.WithBackground(r.activeTheme.SnapshotBackground),
	)
}

func (d *drawCmd) Run() error {
	bank, release, err := d.openBank()
	if err != nil {
		return err
	}
	defer release()
	q, err := resolveQuestion(bank, d.question)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	editor, err := quiz.NewEditor(bank, q.ID)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	existing := editor.OpenDrawing()

	onEnd := func(result drawing.Drawing, snapshot image.Image) {
		editor.FinishDrawing(result, snapshot)
		switch {
		case !result.Empty():
			d.log.Info("drawing saved", zap.String("question", q.ID.String()), zap.Int("lines", len(result.Lines)))
			d.notifier.Save(q.Prompt, snapshot)
		case existing != nil:
			d.log.Info("drawing removed", zap.String("question", q.ID.String()))
			d.notifier.Clear(q.Prompt)
		}
	}
	w := app.New(d.newCanvas(), onEnd,
		app.WithTheme(d.activeTheme),
		app.WithLogger(d.log),
		app.WithTitle(q.Prompt),
		app.WithCopy(func(img image.Image) error {
			if err := clipboard.WriteImage(img); err != nil {
				return err
			}
			d.notifier.Copy(q.Prompt)
			return nil
		}),
	)
	runWindowFn(w, existing)
	if !w.Controller().Ended() {
		return errors.New("draw: window closed before the session ended")
	}
	return nil
}
