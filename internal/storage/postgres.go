package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

// calculationRow is the gorm model backing the Postgres store.
type calculationRow struct {
	ID           string    `gorm:"primaryKey"`
	Fingerprint  string    `gorm:"index;not null"`
	CreatedAt    time.Time `gorm:"index"`
	ChannelClass string
	CurveType    string
	Profile      []byte `gorm:"not null"`
}

func (calculationRow) TableName() string {
	return "calculations"
}

// PostgresBackend stores calculations in a shared Postgres database.
type PostgresBackend struct {
	db *gorm.DB
}

// NewPostgresBackend connects to Postgres and migrates the calculations
// table.
func NewPostgresBackend(connectionString string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.AutoMigrate(&calculationRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate calculations table: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

// SaveCalculation stores one calculation record.
func (b *PostgresBackend) SaveCalculation(ctx context.Context, rec *CalculationRecord) error {
	blob, err := encodeProfile(rec.Profile)
	if err != nil {
		return err
	}

	row := calculationRow{
		ID:           rec.ID,
		Fingerprint:  rec.Fingerprint,
		CreatedAt:    rec.CreatedAt,
		ChannelClass: string(rec.Profile.ChannelClass),
		CurveType:    string(rec.Profile.CurveType),
		Profile:      blob,
	}
	if err := b.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert calculation %s: %w", rec.ID, err)
	}
	return nil
}

// GetCalculation returns the stored calculation with the given ID.
func (b *PostgresBackend) GetCalculation(ctx context.Context, id string) (*CalculationRecord, error) {
	return b.getWhere(ctx, "id = ?", id)
}

// GetByFingerprint returns the most recent stored calculation with the
// given parameter fingerprint.
func (b *PostgresBackend) GetByFingerprint(ctx context.Context, fingerprint string) (*CalculationRecord, error) {
	return b.getWhere(ctx, "fingerprint = ?", fingerprint)
}

func (b *PostgresBackend) getWhere(ctx context.Context, query string, arg any) (*CalculationRecord, error) {
	var row calculationRow
	err := b.db.WithContext(ctx).Where(query, arg).Order("created_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query calculation: %w", err)
	}

	profile, err := decodeProfile(row.Profile)
	if err != nil {
		return nil, err
	}
	return &CalculationRecord{
		ID:          row.ID,
		Fingerprint: row.Fingerprint,
		CreatedAt:   row.CreatedAt,
		Profile:     profile,
	}, nil
}

// ListCalculations returns summaries of the most recent calculations,
// newest first.
func (b *PostgresBackend) ListCalculations(ctx context.Context, limit int) ([]CalculationSummary, error) {
	var rows []calculationRow
	err := b.db.WithContext(ctx).
		Select("id", "fingerprint", "created_at", "channel_class", "curve_type").
		Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	out := make([]CalculationSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, CalculationSummary{
			ID:           r.ID,
			Fingerprint:  r.Fingerprint,
			CreatedAt:    r.CreatedAt,
			ChannelClass: hydraulics.ChannelClass(r.ChannelClass),
			CurveType:    hydraulics.CurveType(r.CurveType),
		})
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (b *PostgresBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
