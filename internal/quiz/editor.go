package quiz

import (
	"errors"
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/drawing"
)

// Editor edits one question of a bank, including its drawing and image.
type Editor struct {
	bank *Bank
	q    NumericQuestion
	log  *zap.Logger

	hadDrawing bool
	opened     bool
}

// NewEditor opens the question with id for editing.
func NewEditor(bank *Bank, id uuid.UUID) (*Editor, error) {
	i, ok := bank.Index(id)
	if !ok {
		return nil, errors.New("question not found")
	}
	return &Editor{bank: bank, q: bank.questions[i], log: bank.log}, nil
}

// Question returns the question as currently edited.
func (e *Editor) Question() NumericQuestion { return e.q }

// DrawingKey is the store key of the question's drawing.
func (e *Editor) DrawingKey() string { return e.q.DrawingKey() }

// SetPrompt changes the prompt.
func (e *Editor) SetPrompt(p string) {
	e.q.Prompt = p
	e.bank.Update(e.q)
}

// SetAnswer parses text and changes the answer. Invalid text leaves the
// previous answer in place.
func (e *Editor) SetAnswer(text string) error {
	v, err := ParseAnswer(text)
	if err != nil {
		return err
	}
	e.q.Answer = v
	e.bank.Update(e.q)
	return nil
}

// Image returns the question's image.
func (e *Editor) Image() (image.Image, bool) {
	if e.q.ImageKey == "" || e.bank.images == nil {
		return nil, false
	}
	return e.bank.images.Load(e.q.ImageKey)
}

// OpenDrawing returns the stored drawing to start a session from.
func (e *Editor) OpenDrawing() *drawing.Drawing {
	e.opened = true
	e.hadDrawing = false
	if e.bank.drawings == nil {
		return nil
	}
	d, ok := e.bank.drawings.Load(e.DrawingKey())
	if !ok {
		return nil
	}
	e.hadDrawing = true
	return &d
}

// FinishDrawing stores the result of a drawing session. An empty drawing
// removes a previously stored drawing and image. Otherwise the drawing is
// saved and the snapshot becomes the question's image.
func (e *Editor) FinishDrawing(d drawing.Drawing, snapshot image.Image) {
	key := e.DrawingKey()
	if !e.opened && e.bank.drawings != nil {
		_, e.hadDrawing = e.bank.drawings.Load(key)
	}
	e.opened = false
	if d.Empty() {
		if !e.hadDrawing {
			return
		}
		e.log.Debug("drawing cleared", zap.String("question", key))
		if e.bank.drawings != nil {
			e.bank.drawings.Delete(key)
		}
		if e.q.ImageKey != "" && e.bank.images != nil {
			e.bank.images.Delete(e.q.ImageKey)
		}
		e.q.ImageKey = ""
		e.bank.Update(e.q)
		return
	}
	if old := e.q.ImageKey; old != "" && old != key && e.bank.images != nil {
		e.bank.images.Delete(old)
	}
	if e.bank.drawings != nil {
		e.bank.drawings.Save(key, d)
	}
	if snapshot != nil && e.bank.images != nil {
		e.bank.images.Save(key, snapshot)
		e.q.ImageKey = key
	}
	e.log.Debug("drawing saved", zap.String("question", key), zap.Int("lines", len(d.Lines)))
	e.bank.Update(e.q)
}

// ClearImage removes the question's image and drawing.
func (e *Editor) ClearImage() {
	if e.q.ImageKey != "" && e.bank.images != nil {
		e.bank.images.Delete(e.q.ImageKey)
	}
	if e.bank.drawings != nil {
		e.bank.drawings.Delete(e.DrawingKey())
	}
	e.q.ImageKey = ""
	e.bank.Update(e.q)
}

// AttachImage stores a picked image for the question. Any drawing is
// discarded since it no longer matches the image.
func (e *Editor) AttachImage(img image.Image) {
	if img == nil || e.bank.images == nil {
		return
	}
	if e.bank.drawings != nil {
		e.bank.drawings.Delete(e.DrawingKey())
	}
	key := e.q.ImageKey
	if key == "" {
		key = e.DrawingKey()
	}
	e.bank.images.Save(key, img)
	e.q.ImageKey = key
	e.bank.Update(e.q)
}
