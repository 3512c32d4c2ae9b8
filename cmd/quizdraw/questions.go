package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/example/quizdraw/internal/quiz"
)

type questionsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseQuestionsCmd(args []string, r *root) (*questionsCmd, error) {
	fs := flag.NewFlagSet("questions", flag.ExitOnError)
	q := &questionsCmd{root: r.subcommand("questions"), fs: fs}
	fs.Usage = usageFunc(q)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *questionsCmd) FlagSet() *flag.FlagSet {
	return q.fs
}

func (q *questionsCmd) Run() error {
	args := q.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: q}
	}
	bank, release, err := q.openBank()
	if err != nil {
		return err
	}
	defer release()
	bank.OnReset(func() { q.log.Debug("score reset after question change") })

	switch args[0] {
	case "list":
		return q.list(bank)
	case "add":
		return q.add(bank, args[1:])
	case "edit":
		return q.edit(bank, args[1:])
	case "move":
		return q.move(bank, args[1:])
	case "delete":
		return q.delete(bank, args[1:])
	case "attach":
		return q.attach(bank, args[1:])
	case "detach":
		return q.detach(bank, args[1:])
	case "reset":
		bank.ResetAll()
		fmt.Fprintln(q.stdout, "question bank cleared")
		return nil
	default:
		return fmt.Errorf("unknown questions command: %s", args[0])
	}
}

func (q *questionsCmd) list(bank *quiz.Bank) error {
	if bank.Len() == 0 {
		fmt.Fprintln(q.stdout, "no questions")
		return nil
	}
	tw := tabwriter.NewWriter(q.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tANSWER\tDRAWING\tPROMPT")
	for i, nq := range bank.List() {
		drawn := ""
		if nq.ImageKey != "" {
			drawn = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%g\t%s\t%s\n", i+1, nq.ID, nq.Answer, drawn, nq.Prompt)
	}
	return tw.Flush()
}

// questionFlags parses -prompt and -answer for add and edit.
func questionFlags(name string, args []string) (fs *flag.FlagSet, prompt, answer *string, err error) {
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	prompt = fs.String("prompt", "", "question text")
	answer = fs.String("answer", "", "numeric answer")
	err = fs.Parse(args)
	return fs, prompt, answer, err
}

func (q *questionsCmd) add(bank *quiz.Bank, args []string) error {
	_, prompt, answer, err := questionFlags("add", args)
	if err != nil {
		return fmt.Errorf("questions add: %w", err)
	}
	if *prompt == "" {
		return fmt.Errorf("questions add: -prompt is required")
	}
	v, err := quiz.ParseAnswer(*answer)
	if err != nil {
		return fmt.Errorf("questions add: %w", err)
	}
	nq := bank.Create(*prompt, v)
	fmt.Fprintf(q.stdout, "added question %d (%s)\n", bank.Len(), nq.ID)
	return nil
}

func position(bank *quiz.Bank, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > bank.Len() {
		return 0, fmt.Errorf("invalid position %q: have %d questions", s, bank.Len())
	}
	return n - 1, nil
}

func (q *questionsCmd) edit(bank *quiz.Bank, args []string) error {
	if len(args) < 1 {
		return &UsageError{of: q}
	}
	i, err := position(bank, args[0])
	if err != nil {
		return fmt.Errorf("questions edit: %w", err)
	}
	fs, prompt, answer, err := questionFlags("edit", args[1:])
	if err != nil {
		return fmt.Errorf("questions edit: %w", err)
	}
	nq, _ := bank.Get(i)
	editor, err := quiz.NewEditor(bank, nq.ID)
	if err != nil {
		return fmt.Errorf("questions edit: %w", err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["answer"] {
		if err := editor.SetAnswer(*answer); err != nil {
			return fmt.Errorf("questions edit: %w", err)
		}
	}
	if set["prompt"] {
		editor.SetPrompt(*prompt)
	}
	fmt.Fprintf(q.stdout, "question %d: %s = %g\n", i+1, editor.Question().Prompt, editor.Question().Answer)
	return nil
}

func (q *questionsCmd) move(bank *quiz.Bank, args []string) error {
	if len(args) != 2 {
		return &UsageError{of: q}
	}
	from, err := position(bank, args[0])
	if err != nil {
		return fmt.Errorf("questions move: %w", err)
	}
	to, err := position(bank, args[1])
	if err != nil {
		return fmt.Errorf("questions move: %w", err)
	}
	bank.Move(from, to)
	return nil
}

func (q *questionsCmd) delete(bank *quiz.Bank, args []string) error {
	if len(args) != 1 {
		return &UsageError{of: q}
	}
	i, err := position(bank, args[0])
	if err != nil {
		return fmt.Errorf("questions delete: %w", err)
	}
	removed, _ := bank.Delete(i)
	fmt.Fprintf(q.stdout, "deleted %q\n", removed.Prompt)
	return nil
}

func (q *questionsCmd) editorAt(bank *quiz.Bank, pos string) (*quiz.Editor, error) {
	i, err := position(bank, pos)
	if err != nil {
		return nil, err
	}
	nq, _ := bank.Get(i)
	return quiz.NewEditor(bank, nq.ID)
}

func (q *questionsCmd) attach(bank *quiz.Bank, args []string) error {
	if len(args) != 2 {
		return &UsageError{of: q}
	}
	editor, err := q.editorAt(bank, args[0])
	if err != nil {
		return fmt.Errorf("questions attach: %w", err)
	}
	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("questions attach: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("questions attach: decode %s: %w", args[1], err)
	}
	editor.AttachImage(img)
	fmt.Fprintf(q.stdout, "attached %s to question %s\n", args[1], args[0])
	return nil
}

func (q *questionsCmd) detach(bank *quiz.Bank, args []string) error {
	if len(args) != 1 {
		return &UsageError{of: q}
	}
	editor, err := q.editorAt(bank, args[0])
	if err != nil {
		return fmt.Errorf("questions detach: %w", err)
	}
	editor.ClearImage()
	fmt.Fprintf(q.stdout, "removed image and drawing from question %s\n", args[0])
	return nil
}
