package main

import (
	"flag"
	"fmt"

	"github.com/example/quizdraw/internal/quiz"
)

type scoreCmd struct {
	*root
	fs *flag.FlagSet
}

func parseScoreCmd(args []string, r *root) (*scoreCmd, error) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	s := &scoreCmd{root: r.subcommand("score"), fs: fs}
	fs.Usage = usageFunc(s)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 || fs.NArg() == 1 && fs.Arg(0) != "reset" {
		return nil, &UsageError{of: s}
	}
	return s, nil
}

func (s *scoreCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func (s *scoreCmd) Run() error {
	score := quiz.LoadScore(s.dataDir, s.log)
	if s.fs.Arg(0) == "reset" {
		score.Reset()
		fmt.Fprintln(s.stdout, "score reset")
		return nil
	}
	fmt.Fprintf(s.stdout, "correct: %d\nincorrect: %d\ntotal: %d\n", score.Correct(), score.Incorrect(), score.Total())
	return nil
}
