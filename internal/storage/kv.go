// Package storage persists board state as JSON blobs in a single SQLite
// key/value table. Reads that fail (absent key, corrupt JSON) behave as if
// the key were never written; writes are best effort and only logged on
// failure. Callers above this layer never see a storage error.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store is a JSON-over-SQLite key/value store backing a single board.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// DefaultDBPath returns the per-user database location, falling back to the
// working directory when the home directory cannot be resolved.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".boardquest.db"
	}
	return filepath.Join(home, ".boardquest.db")
}

// Open opens (creating if needed) the database at path and ensures the kv
// schema exists. A nil logger disables diagnostics.
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Load unmarshals the value stored under key into dst. It reports whether a
// usable value was found; on a miss or a decode failure dst is left untouched.
func (s *Store) Load(ctx context.Context, key string, dst any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.log.Warn("kv read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("kv value corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save upserts a single key. Failures are logged and swallowed.
func (s *Store) Save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("kv encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, raw)
	if err != nil {
		s.log.Warn("kv write failed", zap.String("key", key), zap.Error(err))
	}
}

// SaveAll upserts every entry in one transaction so a snapshot is either
// fully written or not written at all. Failures are logged and swallowed.
func (s *Store) SaveAll(ctx context.Context, entries map[string]any) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log.Warn("kv snapshot begin failed", zap.Error(err))
		return
	}
	for key, v := range entries {
		raw, err := json.Marshal(v)
		if err != nil {
			s.log.Warn("kv encode failed", zap.String("key", key), zap.Error(err))
			_ = tx.Rollback()
			return
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, raw); err != nil {
			s.log.Warn("kv write failed", zap.String("key", key), zap.Error(err))
			_ = tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		s.log.Warn("kv snapshot commit failed", zap.Error(err))
	}
}

// RequestDurable asks SQLite for its most durable mode (WAL journaling with
// full synchronous writes) and reports whether it was granted. The store
// works either way; the result is informational.
func (s *Store) RequestDurable(ctx context.Context) bool {
	var mode string
	if err := s.db.QueryRowContext(ctx, `PRAGMA journal_mode=WAL`).Scan(&mode); err != nil {
		s.log.Warn("durability request failed", zap.Error(err))
		return false
	}
	if _, err := s.db.ExecContext(ctx, `PRAGMA synchronous=FULL`); err != nil {
		s.log.Warn("durability request failed", zap.Error(err))
		return false
	}
	return mode == "wal"
}

func (s *Store) Close() error {
	return s.db.Close()
}
