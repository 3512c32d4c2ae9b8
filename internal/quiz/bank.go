package quiz

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/store"
)

// ImageStore is the subset of store.ImageStore the quiz needs.
type ImageStore interface {
	Load(key string) (image.Image, bool)
	Save(key string, img image.Image)
	Delete(key string)
}

// Bank is the ordered, persisted list of numeric questions. Every change is
// saved, resets the score and notifies reset listeners.
type Bank struct {
	path     string
	log      *zap.Logger
	score    *Score
	drawings store.DrawingStore
	images   ImageStore

	questions []NumericQuestion
	listeners []func()
}

// BankOption configures a Bank.
type BankOption func(*Bank)

// WithScore sets the score reset on every change.
func WithScore(s *Score) BankOption { return func(b *Bank) { b.score = s } }

// WithDrawings sets the store drawings are removed from on delete.
func WithDrawings(d store.DrawingStore) BankOption { return func(b *Bank) { b.drawings = d } }

// WithImages sets the store images are removed from on delete.
func WithImages(i ImageStore) BankOption { return func(b *Bank) { b.images = i } }

// WithBankLogger sets the logger.
func WithBankLogger(l *zap.Logger) BankOption {
	return func(b *Bank) {
		if l != nil {
			b.log = l
		}
	}
}

// LoadBank reads numeric_questions.json from dataDir. A missing or malformed
// file yields an empty bank.
func LoadBank(dataDir string, opts ...BankOption) *Bank {
	b := &Bank{path: filepath.Join(dataDir, "numeric_questions.json"), log: zap.NewNop()}
	for _, o := range opts {
		o(b)
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		return b
	}
	if err := json.Unmarshal(data, &b.questions); err != nil {
		b.log.Warn("decode question bank", zap.Error(err))
		b.questions = nil
	}
	return b
}

// OnReset registers fn to run after every change.
func (b *Bank) OnReset(fn func()) { b.listeners = append(b.listeners, fn) }

// Drawings returns the drawing store the bank was built with.
func (b *Bank) Drawings() store.DrawingStore { return b.drawings }

// Images returns the image store the bank was built with.
func (b *Bank) Images() ImageStore { return b.images }

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// List returns a copy of the questions in order.
func (b *Bank) List() []NumericQuestion {
	out := make([]NumericQuestion, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns question i.
func (b *Bank) Get(i int) (NumericQuestion, bool) {
	if i < 0 || i >= len(b.questions) {
		return NumericQuestion{}, false
	}
	return b.questions[i], true
}

// Index returns the position of the question with id.
func (b *Bank) Index(id uuid.UUID) (int, bool) {
	for i, q := range b.questions {
		if q.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Create appends a question and returns it.
func (b *Bank) Create(prompt string, answer float64) NumericQuestion {
	q := NewNumericQuestion(prompt, answer)
	b.questions = append(b.questions, q)
	b.changed()
	return q
}

// Update replaces the stored question with the same id. Unknown ids and
// unchanged values are ignored.
func (b *Bank) Update(q NumericQuestion) bool {
	i, ok := b.Index(q.ID)
	if !ok || b.questions[i].Equal(q) {
		return false
	}
	b.questions[i] = q
	b.changed()
	return true
}

// Move repositions question from to index to.
func (b *Bank) Move(from, to int) bool {
	n := len(b.questions)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	q := b.questions[from]
	b.questions = append(b.questions[:from], b.questions[from+1:]...)
	b.questions = append(b.questions[:to], append([]NumericQuestion{q}, b.questions[to:]...)...)
	b.changed()
	return true
}

// Delete removes question i together with its image and drawing.
func (b *Bank) Delete(i int) (NumericQuestion, bool) {
	q, ok := b.Get(i)
	if !ok {
		return NumericQuestion{}, false
	}
	b.questions = append(b.questions[:i], b.questions[i+1:]...)
	if q.ImageKey != "" && b.images != nil {
		b.images.Delete(q.ImageKey)
	}
	if b.drawings != nil {
		b.drawings.Delete(q.DrawingKey())
	}
	b.changed()
	return q, true
}

// ResetAll removes every question. Stored images and drawings are left in
// place.
func (b *Bank) ResetAll() {
	b.questions = nil
	b.changed()
}

func (b *Bank) changed() {
	b.save()
	if b.score != nil {
		b.score.Reset()
	}
	for _, fn := range b.listeners {
		fn()
	}
}

func (b *Bank) save() {
	qs := b.questions
	if qs == nil {
		qs = []NumericQuestion{}
	}
	data, err := json.MarshalIndent(qs, "", "  ")
	if err != nil {
		b.log.Warn("encode question bank", zap.Error(err))
		return
	}
	if err := store.WriteFileAtomic(filepath.Dir(b.path), b.path, data); err != nil {
		b.log.Warn("save question bank", zap.Error(err))
	}
}
