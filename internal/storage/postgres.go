package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type postgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresConnection opens and pings a postgres database
func NewPostgresConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewPostgresStore creates a store over a single snapshots table, creating
// the table if needed.
func NewPostgresStore(db *sql.DB, logger *zap.Logger) (*postgresStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshots table: %w", err)
	}
	return &postgresStore{db: db, logger: logger}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM snapshots WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Error("Failed to get snapshot", zap.String("key", key), zap.Error(err))
		return "", err
	}

	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = now()
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		s.logger.Error("Failed to set snapshot", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM snapshots WHERE key = $1`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		s.logger.Error("Failed to delete snapshot", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}
