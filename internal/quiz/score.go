package quiz

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/quizdraw/internal/store"
)

// Score is the running tally of answers. It is saved after every change.
type Score struct {
	path string
	log  *zap.Logger

	correct   int
	incorrect int
}

type scoreRecord struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// LoadScore reads score.json from dataDir. A missing or unreadable file starts
// from zero.
func LoadScore(dataDir string, log *zap.Logger) *Score {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Score{path: filepath.Join(dataDir, "score.json"), log: log}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	var r scoreRecord
	if err := json.Unmarshal(b, &r); err != nil {
		log.Warn("decode score", zap.Error(err))
		return s
	}
	s.correct, s.incorrect = r.Correct, r.Incorrect
	return s
}

func (s *Score) Correct() int   { return s.correct }
func (s *Score) Incorrect() int { return s.incorrect }
func (s *Score) Total() int     { return s.correct + s.incorrect }

// Record counts one answer.
func (s *Score) Record(correct bool) {
	if correct {
		s.correct++
	} else {
		s.incorrect++
	}
	s.save()
}

// Reset sets both counters to zero.
func (s *Score) Reset() {
	s.correct, s.incorrect = 0, 0
	s.save()
}

func (s *Score) save() {
	if s.path == "" {
		return
	}
	b, err := json.Marshal(scoreRecord{Correct: s.correct, Incorrect: s.incorrect})
	if err != nil {
		return
	}
	if err := store.WriteFileAtomic(filepath.Dir(s.path), s.path, b); err != nil {
		s.log.Warn("save score", zap.Error(err))
	}
}
