// Package managers dispatches calculation requests onto a bounded worker
// pool and fronts the calculation store. The engine itself has no notion of
// timeout or cancellation, so the manager wraps each computation with a
// caller-side deadline.
package managers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/tmcasey/channelflow/internal/storage"
	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

// CalculationManager runs profile computations on a fixed-size worker pool
// and caches completed results by parameter fingerprint.
type CalculationManager struct {
	pool    *ants.Pool
	store   storage.Backend
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewCalculationManager creates a manager with the given pool size and
// per-request timeout.
func NewCalculationManager(poolSize int, timeout time.Duration, store storage.Backend, logger *zap.SugaredLogger) (*CalculationManager, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	return &CalculationManager{
		pool:    pool,
		store:   store,
		timeout: timeout,
		logger:  logger,
	}, nil
}

type calcResult struct {
	profile *hydraulics.WaterSurfaceProfile
	err     error
}

// Calculate returns the stored calculation for the given parameters if one
// exists, otherwise computes the profile on the worker pool, stores it, and
// returns the new record. Invalid parameters fail before any work is
// submitted.
func (m *CalculationManager) Calculate(ctx context.Context, params hydraulics.ChannelParams) (*storage.CalculationRecord, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	fingerprint, err := Fingerprint(params)
	if err != nil {
		return nil, err
	}

	if rec, err := m.store.GetByFingerprint(ctx, fingerprint); err == nil {
		m.logger.Debugf("calculation cache hit for fingerprint %s", fingerprint[:12])
		return rec, nil
	} else if err != storage.ErrNotFound {
		// A broken store shouldn't block computation; log and carry on.
		m.logger.Warnf("calculation store lookup failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	results := make(chan calcResult, 1)
	if err := m.pool.Submit(func() {
		profile, err := hydraulics.Compute(params)
		results <- calcResult{profile: profile, err: err}
	}); err != nil {
		return nil, fmt.Errorf("submitting calculation: %w", err)
	}

	var res calcResult
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, fmt.Errorf("calculation timed out: %w", ctx.Err())
	}
	if res.err != nil {
		return nil, res.err
	}

	rec := &storage.CalculationRecord{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		CreatedAt:   time.Now().UTC(),
		Profile:     res.profile,
	}
	if err := m.store.SaveCalculation(ctx, rec); err != nil {
		m.logger.Warnf("failed to store calculation %s: %v", rec.ID, err)
	}
	m.logger.Infof("computed %s profile (%s channel) for calculation %s",
		res.profile.CurveType, res.profile.ChannelClass, rec.ID)
	return rec, nil
}

// Get returns a stored calculation by ID.
func (m *CalculationManager) Get(ctx context.Context, id string) (*storage.CalculationRecord, error) {
	return m.store.GetCalculation(ctx, id)
}

// List returns summaries of recent calculations.
func (m *CalculationManager) List(ctx context.Context, limit int) ([]storage.CalculationSummary, error) {
	return m.store.ListCalculations(ctx, limit)
}

// Close releases the worker pool.
func (m *CalculationManager) Close() {
	m.pool.Release()
}
