package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/quizdraw/internal/quiz"
)

type quizCmd struct {
	*root
	fs   *flag.FlagSet
	mode string
}

func parseQuizCmd(args []string, r *root) (*quizCmd, error) {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	q := &quizCmd{root: r.subcommand("quiz"), fs: fs}
	fs.Usage = usageFunc(q)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: q}
	}
	q.mode = fs.Arg(0)
	if q.mode != "numeric" && q.mode != "mcq" {
		return nil, &UsageError{of: q}
	}
	return q, nil
}

func (q *quizCmd) FlagSet() *flag.FlagSet {
	return q.fs
}

func (q *quizCmd) Run() error {
	bank, release, err := q.openBank()
	if err != nil {
		return err
	}
	defer release()
	score := quiz.LoadScore(q.dataDir, q.log)
	in := bufio.NewScanner(q.stdin)

	if q.mode == "mcq" {
		err = q.runMCQ(in, quiz.NewMCQRound(quiz.BuiltinMCQ(), score))
	} else {
		questions := bank.List()
		if len(questions) == 0 {
			questions = quiz.PracticeNumeric()
		}
		err = q.runNumeric(in, quiz.NewNumericRound(questions, score))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(q.stdout, "Score: %d correct, %d incorrect\n", score.Correct(), score.Incorrect())
	return nil
}

// ask prints prompt and reads one answer line. ok is false at end of input.
func (q *quizCmd) ask(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Fprint(q.stdout, prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func (q *quizCmd) runNumeric(in *bufio.Scanner, round *quiz.NumericRound) error {
	for !round.Done() {
		nq := round.Question()
		fmt.Fprintf(q.stdout, "Question %d of %d: %s\n", round.Current()+1, round.Len(), nq.Prompt)
		text, ok := q.ask(in, "> ")
		if !ok {
			return in.Err()
		}
		if text == "" {
			round.Next()
			continue
		}
		correct, err := round.Submit(text)
		switch {
		case errors.Is(err, quiz.ErrInvalidAnswer):
			fmt.Fprintln(q.stdout, "Please enter a number.")
			continue
		case err != nil:
			return err
		case correct:
			fmt.Fprintln(q.stdout, "Correct!")
		default:
			fmt.Fprintf(q.stdout, "Incorrect, the answer is %g.\n", nq.Answer)
		}
		round.Next()
	}
	return nil
}

func (q *quizCmd) runMCQ(in *bufio.Scanner, round *quiz.MCQRound) error {
	for !round.Done() {
		mq := round.Question()
		fmt.Fprintf(q.stdout, "Question %d of %d: %s\n", round.Current()+1, round.Len(), mq.Prompt)
		for i, c := range mq.Choices {
			fmt.Fprintf(q.stdout, "  %d) %s\n", i+1, c)
		}
		text, ok := q.ask(in, "> ")
		if !ok {
			return in.Err()
		}
		if text == "" {
			round.Next()
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintf(q.stdout, "Please choose 1 to %d.\n", len(mq.Choices))
			continue
		}
		correct, err := round.Submit(n - 1)
		switch {
		case errors.Is(err, quiz.ErrInvalidChoice):
			fmt.Fprintf(q.stdout, "Please choose 1 to %d.\n", len(mq.Choices))
			continue
		case err != nil:
			return err
		case correct:
			fmt.Fprintln(q.stdout, "Correct!")
		default:
			fmt.Fprintf(q.stdout, "Incorrect, the answer is %s.\n", mq.Choices[mq.CorrectIndex])
		}
		round.Next()
	}
	return nil
}
