package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KV is the opaque string store the tracker persists into. Implementations
// exist for sqlite, postgres and redis; the gateway does not care which.
type KV interface {
	Close() error

	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// BaseStore provides common functionality for the SQL-backed KV implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

const schema = `
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *BaseStore) EnsureSchema() error {
	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (s *BaseStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := s.Converter(`SELECT value FROM app_state WHERE key = ?`)

	err := s.DB.GetContext(ctx, &value, query, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *BaseStore) Set(ctx context.Context, key, value string) error {
	query := s.Converter(`
		INSERT INTO app_state (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)

	if _, err := s.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}
