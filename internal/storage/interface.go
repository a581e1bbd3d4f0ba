// Package storage defines interfaces and implementations for persisting
// computed water-surface profiles. Profiles are stored as opaque encoded
// blobs keyed by a deterministic parameter fingerprint, so a repeated
// request with identical parameters can be served from the store instead of
// recomputed.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tmcasey/channelflow/internal/log"
	"github.com/tmcasey/channelflow/pkg/config"
	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

// ErrNotFound is returned when no calculation matches the requested ID or
// fingerprint.
var ErrNotFound = errors.New("calculation not found")

// CalculationRecord is one stored calculation: the request identity plus the
// complete computed profile.
type CalculationRecord struct {
	ID          string
	Fingerprint string
	CreatedAt   time.Time
	Profile     *hydraulics.WaterSurfaceProfile
}

// CalculationSummary is the listing view of a stored calculation, without
// the station payload.
type CalculationSummary struct {
	ID           string                  `json:"id"`
	Fingerprint  string                  `json:"fingerprint"`
	CreatedAt    time.Time               `json:"created_at"`
	ChannelClass hydraulics.ChannelClass `json:"channel_class"`
	CurveType    hydraulics.CurveType    `json:"curve_type"`
}

// Backend is a calculation store. Implementations must be safe for
// concurrent use.
type Backend interface {
	SaveCalculation(ctx context.Context, rec *CalculationRecord) error
	GetCalculation(ctx context.Context, id string) (*CalculationRecord, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*CalculationRecord, error)
	ListCalculations(ctx context.Context, limit int) ([]CalculationSummary, error)
	Close() error
}

// New opens the storage backend selected by the configuration.
func New(cfg *config.ConfigData) (Backend, error) {
	switch {
	case cfg.Storage.Postgres != nil:
		log.Info("using Postgres calculation store")
		return NewPostgresBackend(cfg.Storage.Postgres.ConnectionString)
	case cfg.Storage.SQLite != nil:
		log.Infof("using SQLite calculation store at %s", cfg.Storage.SQLite.Path)
		return NewSQLiteBackend(cfg.Storage.SQLite.Path)
	default:
		return nil, fmt.Errorf("no storage backend configured")
	}
}

// encodeProfile serializes a profile for blob storage.
func encodeProfile(p *hydraulics.WaterSurfaceProfile) ([]byte, error) {
	blob, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return blob, nil
}

// decodeProfile deserializes a stored profile blob.
func decodeProfile(blob []byte) (*hydraulics.WaterSurfaceProfile, error) {
	var p hydraulics.WaterSurfaceProfile
	if err := msgpack.Unmarshal(blob, &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}
