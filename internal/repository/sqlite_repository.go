package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) PreferenceRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetPreference(ctx context.Context, key string) (string, error) {
	query := "SELECT value FROM preferences WHERE key = ?"
	var value string
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("could not read preference %q: %w", key, err)
	}
	return value, nil
}

func (r *sqliteRepository) SetPreference(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("could not save preference %q: %w", key, err)
	}
	return nil
}

// DeletePreference removes key. Deleting a missing key is not an error.
func (r *sqliteRepository) DeletePreference(ctx context.Context, key string) error {
	query := "DELETE FROM preferences WHERE key = ?"
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("could not delete preference %q: %w", key, err)
	}
	return nil
}
