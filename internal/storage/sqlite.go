package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores calculations in a single-file SQLite database. It is
// the default store for single-host deployments.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (and if necessary initializes) a SQLite calculation
// store at the given path. Use ":memory:" for an ephemeral store.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBackend) migrate() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS calculations (
			id TEXT PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			channel_class TEXT NOT NULL,
			curve_type TEXT NOT NULL,
			profile BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_calculations_fingerprint ON calculations(fingerprint);
	`)
	if err != nil {
		return fmt.Errorf("failed to create calculations schema: %w", err)
	}
	return nil
}

// SaveCalculation stores one calculation record.
func (b *SQLiteBackend) SaveCalculation(ctx context.Context, rec *CalculationRecord) error {
	blob, err := encodeProfile(rec.Profile)
	if err != nil {
		return err
	}

	_, err = b.db.ExecContext(ctx, `
		INSERT INTO calculations (id, fingerprint, created_at, channel_class, curve_type, profile)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Fingerprint, rec.CreatedAt,
		string(rec.Profile.ChannelClass), string(rec.Profile.CurveType), blob)
	if err != nil {
		return fmt.Errorf("failed to insert calculation %s: %w", rec.ID, err)
	}
	return nil
}

// GetCalculation returns the stored calculation with the given ID.
func (b *SQLiteBackend) GetCalculation(ctx context.Context, id string) (*CalculationRecord, error) {
	return b.getWhere(ctx, "id = ?", id)
}

// GetByFingerprint returns the most recent stored calculation with the
// given parameter fingerprint.
func (b *SQLiteBackend) GetByFingerprint(ctx context.Context, fingerprint string) (*CalculationRecord, error) {
	return b.getWhere(ctx, "fingerprint = ?", fingerprint)
}

func (b *SQLiteBackend) getWhere(ctx context.Context, where string, arg any) (*CalculationRecord, error) {
	row := b.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, created_at, profile
		FROM calculations WHERE `+where+`
		ORDER BY created_at DESC LIMIT 1`, arg)

	var rec CalculationRecord
	var blob []byte
	if err := row.Scan(&rec.ID, &rec.Fingerprint, &rec.CreatedAt, &blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query calculation: %w", err)
	}

	profile, err := decodeProfile(blob)
	if err != nil {
		return nil, err
	}
	rec.Profile = profile
	return &rec, nil
}

// ListCalculations returns summaries of the most recent calculations,
// newest first.
func (b *SQLiteBackend) ListCalculations(ctx context.Context, limit int) ([]CalculationSummary, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, fingerprint, created_at, channel_class, curve_type
		FROM calculations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var out []CalculationSummary
	for rows.Next() {
		var s CalculationSummary
		if err := rows.Scan(&s.ID, &s.Fingerprint, &s.CreatedAt, &s.ChannelClass, &s.CurveType); err != nil {
			return nil, fmt.Errorf("failed to scan calculation row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
