package quiz

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Tolerance is how close a numeric answer must be to count as correct.
const Tolerance = 0.0001

var (
	ErrAnswered      = errors.New("question already answered")
	ErrInvalidAnswer = errors.New("answer is not a number")
	ErrInvalidChoice = errors.New("choice out of range")
	ErrNoQuestions   = errors.New("no questions")
)

// Round tracks progress through a fixed list of questions.
type Round struct {
	n        int
	current  int
	answered map[int]bool
}

func newRound(n int) Round {
	return Round{n: n, answered: map[int]bool{}}
}

// Current returns the index of the question being asked.
func (r *Round) Current() int { return r.current }

// Len returns the number of questions in the round.
func (r *Round) Len() int { return r.n }

// Answered reports whether question i has been submitted.
func (r *Round) Answered(i int) bool { return r.answered[i] }

// Done reports whether every question has been answered.
func (r *Round) Done() bool { return len(r.answered) >= r.n }

// Next moves to the next unanswered question after the current one, wrapping
// around. It returns false when none is left.
func (r *Round) Next() bool {
	if r.Done() {
		return false
	}
	for off := 1; off <= r.n; off++ {
		c := (r.current + off) % r.n
		if !r.answered[c] {
			r.current = c
			return true
		}
	}
	return false
}

func (r *Round) mark() error {
	if r.n == 0 {
		return ErrNoQuestions
	}
	if r.answered[r.current] {
		return ErrAnswered
	}
	r.answered[r.current] = true
	return nil
}

// NumericRound asks numeric questions.
type NumericRound struct {
	Round
	questions []NumericQuestion
	score     *Score
}

// NewNumericRound starts a round over qs recording into score.
func NewNumericRound(qs []NumericQuestion, score *Score) *NumericRound {
	return &NumericRound{Round: newRound(len(qs)), questions: qs, score: score}
}

// Question returns the current question.
func (r *NumericRound) Question() NumericQuestion { return r.questions[r.current] }

// Submit checks text against the current question.
func (r *NumericRound) Submit(text string) (bool, error) {
	if r.n > 0 && r.answered[r.current] {
		return false, ErrAnswered
	}
	v, err := ParseAnswer(text)
	if err != nil {
		return false, err
	}
	if err := r.mark(); err != nil {
		return false, err
	}
	correct := math.Abs(v-r.questions[r.current].Answer) < Tolerance
	if r.score != nil {
		r.score.Record(correct)
	}
	return correct, nil
}

// MCQRound asks multiple choice questions.
type MCQRound struct {
	Round
	questions []MCQQuestion
	score     *Score
}

// NewMCQRound starts a round over qs recording into score.
func NewMCQRound(qs []MCQQuestion, score *Score) *MCQRound {
	return &MCQRound{Round: newRound(len(qs)), questions: qs, score: score}
}

// Question returns the current question.
func (r *MCQRound) Question() MCQQuestion { return r.questions[r.current] }

// Submit checks choice against the current question.
func (r *MCQRound) Submit(choice int) (bool, error) {
	if r.n > 0 && (choice < 0 || choice >= len(r.questions[r.current].Choices)) {
		return false, ErrInvalidChoice
	}
	if err := r.mark(); err != nil {
		return false, err
	}
	correct := choice == r.questions[r.current].CorrectIndex
	if r.score != nil {
		r.score.Record(correct)
	}
	return correct, nil
}

// ParseAnswer converts typed text to a number, accepting only text that
// ValidNumericInput allows.
func ParseAnswer(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" || !ValidNumericInput(text) {
		return 0, ErrInvalidAnswer
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, ErrInvalidAnswer
	}
	return v, nil
}

// ValidNumericInput reports whether s may appear in a numeric answer field:
// digits, at most one '.', and at most one '-' which must lead.
func ValidNumericInput(s string) bool {
	dots, minus := 0, 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
		case r == '-':
			minus++
			if i != 0 {
				return false
			}
		default:
			return false
		}
	}
	return dots <= 1 && minus <= 1
}
