package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/render"
)

type snapshotCmd struct {
	*root
	fs            *flag.FlagSet
	question      string
	output        string
	shadow        bool
	shadowRadius  int
	shadowOpacity float64
}

func parseSnapshotCmd(args []string, r *root) (*snapshotCmd, error) {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	s := &snapshotCmd{root: r.subcommand("snapshot"), fs: fs}
	fs.Usage = usageFunc(s)
	defaults := render.DefaultShadowOptions()
	fs.StringVar(&s.question, "question", "", "question position (from 1) or id")
	fs.StringVar(&s.output, "output", "drawing.png", "write the PNG to this path, - for stdout")
	fs.BoolVar(&s.shadow, "shadow", false, "draw a drop shadow behind the snapshot")
	fs.IntVar(&s.shadowRadius, "shadow-radius", defaults.Radius, "drop shadow blur radius in pixels")
	fs.Float64Var(&s.shadowOpacity, "shadow-opacity", defaults.Opacity, "drop shadow opacity between 0 and 1")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if s.question == "" {
		return nil, &UsageError{of: s}
	}
	return s, nil
}

func (s *snapshotCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

// storedSnapshot renders the stored drawing of the referenced question.
func (r *root) storedSnapshot(ref string) (*image.RGBA, error) {
	bank, release, err := r.openBank()
	if err != nil {
		return nil, err
	}
	defer release()
	q, err := resolveQuestion(bank, ref)
	if err != nil {
		return nil, err
	}
	d, ok := bank.Drawings().Load(q.DrawingKey())
	if !ok || d.Empty() {
		return nil, fmt.Errorf("question %q has no drawing", ref)
	}
	cv := r.newCanvas()
	cv.LoadDrawing(d)
	return cv.RenderSnapshot(), nil
}

func (s *snapshotCmd) Run() error {
	img, err := s.storedSnapshot(s.question)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if s.shadow {
		opts := render.DefaultShadowOptions()
		opts.Radius = s.shadowRadius
		opts.Opacity = s.shadowOpacity
		img, _ = render.DropShadow(img, opts)
	}

	var w io.Writer
	if s.output == "-" {
		w = s.stdout
	} else {
		f, err := os.Create(s.output)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", s.output, err)
	}
	if s.output != "-" {
		s.log.Info("snapshot written", zap.String("path", s.output), zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	}
	return nil
}
