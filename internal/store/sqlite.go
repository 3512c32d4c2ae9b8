package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/example/quizdraw/internal/drawing"
)

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS drawings (
  key TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);
`

// SQLiteStore keeps drawings as JSON documents in a SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenSQLite opens or creates the database at path and ensures the schema.
func OpenSQLite(ctx context.Context, path string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	dsn := "file:" + path + "?mode=rwc&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schemaSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Load returns the drawing saved under key.
func (s *SQLiteStore) Load(key string) (drawing.Drawing, bool) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM drawings WHERE key=?`, key).Scan(&body)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("query drawing", zap.String("key", key), zap.Error(err))
		}
		return drawing.Drawing{}, false
	}
	d, err := drawing.Unmarshal([]byte(body))
	if err != nil {
		s.log.Warn("decode drawing", zap.String("key", key), zap.Error(err))
		return drawing.Drawing{}, false
	}
	return d, true
}

// Save upserts d under key.
func (s *SQLiteStore) Save(key string, d drawing.Drawing) {
	b, err := drawing.Marshal(d)
	if err != nil {
		s.log.Warn("encode drawing", zap.String("key", key), zap.Error(err))
		return
	}
	_, err = s.db.Exec(`INSERT INTO drawings (key,body,updated_at) VALUES (?,?,?)
		ON CONFLICT (key) DO UPDATE SET body=EXCLUDED.body, updated_at=EXCLUDED.updated_at`,
		key, string(b), time.Now().Unix())
	if err != nil {
		s.log.Warn("save drawing", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes the drawing saved under key.
func (s *SQLiteStore) Delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM drawings WHERE key=?`, key); err != nil {
		s.log.Warn("delete drawing", zap.String("key", key), zap.Error(err))
	}
}
