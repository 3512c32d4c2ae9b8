package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/example/quizdraw/internal/clipboard"
)

// Replaced in tests.
var (
	writeImageFn = func(img image.Image) error { return clipboard.WriteImage(img) }
	writeTextFn  = func(s string) error { return clipboard.WriteText(s) }
)

type copyCmd struct {
	*root
	fs       *flag.FlagSet
	question string
	prompt   bool
}

func parseCopyCmd(args []string, r *root) (*copyCmd, error) {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)
	c := &copyCmd{root: r.subcommand("copy"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.question, "question", "", "question position (from 1) or id")
	fs.BoolVar(&c.prompt, "prompt", false, "copy the question prompt and answer as text instead of the drawing")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.question == "" && fs.NArg() > 0 {
		c.question = fs.Arg(0)
	}
	if c.question == "" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *copyCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *copyCmd) Run() error {
	if c.prompt {
		return c.copyPrompt()
	}
	img, err := c.storedSnapshot(c.question)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := writeImageFn(img); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	c.notifier.Copy("drawing")
	fmt.Fprintln(c.stdout, "copied drawing to clipboard")
	return nil
}

func (c *copyCmd) copyPrompt() error {
	bank, release, err := c.openBank()
	if err != nil {
		return err
	}
	defer release()
	q, err := resolveQuestion(bank, c.question)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := writeTextFn(fmt.Sprintf("%s\n%g", q.Prompt, q.Answer)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	c.notifier.Copy("question text")
	fmt.Fprintln(c.stdout, "copied question to clipboard")
	return nil
}
