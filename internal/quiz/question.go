// Package quiz holds the question bank, the score tally and the quiz rounds
// that sit around the drawing canvas.
package quiz

import (
	"time"

	"github.com/google/uuid"
)

// NumericQuestion is a user-authored question with a numeric answer. ImageKey
// names the attached or drawn image in the image store, if any.
type NumericQuestion struct {
	ID        uuid.UUID `json:"id"`
	Prompt    string    `json:"prompt"`
	Answer    float64   `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
	ImageKey  string    `json:"imageKey,omitempty"`
}

// NewNumericQuestion returns a question with a fresh id.
func NewNumericQuestion(prompt string, answer float64) NumericQuestion {
	return NumericQuestion{
		ID:        uuid.New(),
		Prompt:    prompt,
		Answer:    answer,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// DrawingKey is the key the question's drawing is stored under.
func (q NumericQuestion) DrawingKey() string { return q.ID.String() }

// Equal reports whether q and o hold the same values.
func (q NumericQuestion) Equal(o NumericQuestion) bool {
	return q.ID == o.ID &&
		q.Prompt == o.Prompt &&
		q.Answer == o.Answer &&
		q.CreatedAt.Equal(o.CreatedAt) &&
		q.ImageKey == o.ImageKey
}

// MCQQuestion is a multiple choice question.
type MCQQuestion struct {
	Prompt       string
	Choices      []string
	CorrectIndex int
}

// BuiltinMCQ returns the multiple choice questions shipped with the app.
func BuiltinMCQ() []MCQQuestion {
	return []MCQQuestion{
		{Prompt: "Which ocean is the largest on Earth?", Choices: []string{"Atlantic", "Pacific", "Indian", "Arctic"}, CorrectIndex: 1},
		{Prompt: "Which planet is closest to the Sun?", Choices: []string{"Venus", "Earth", "Mars", "Mercury"}, CorrectIndex: 3},
		{Prompt: "Which element has the chemical symbol O?", Choices: []string{"Gold", "Oxygen", "Osmium", "Zinc"}, CorrectIndex: 1},
	}
}

// PracticeNumeric returns the numeric questions used when the bank is empty.
func PracticeNumeric() []NumericQuestion {
	return []NumericQuestion{
		NewNumericQuestion("How many sides does a hexagon have?", 6),
		NewNumericQuestion("What is 9 × 7?", 63),
		NewNumericQuestion("How many minutes are in 2.5 hours?", 150),
	}
}
