package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/adapter"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/revshare"
)

const (
	defaultExpiryBatchSize     = 50
	defaultExpirySweepInterval = 10 * time.Minute
	defaultExpiryMaxRetryTime  = 5 * time.Minute
)

// ExpirySweeperConfig holds configuration for the expiry sweeper
type ExpirySweeperConfig struct {
	BatchSize    int           // Rounds expired per cycle
	Interval     time.Duration // Time to sleep when no round is left to expire
	MaxRetryTime time.Duration // Total retry time for a cycle failing on storage conflicts
}

// expirySweeper implements the Sweeper interface for closing the claim window of expired rounds
type expirySweeper struct {
	config    *ExpirySweeperConfig
	service   revshare.Service
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewExpirySweeper creates a new expiry sweeper
func NewExpirySweeper(config *ExpirySweeperConfig, service revshare.Service, clock adapter.Clock) Sweeper {
	if config.BatchSize <= 0 {
		config.BatchSize = defaultExpiryBatchSize
	}
	if config.Interval <= 0 {
		config.Interval = defaultExpirySweepInterval
	}
	if config.MaxRetryTime <= 0 {
		config.MaxRetryTime = defaultExpiryMaxRetryTime
	}

	return &expirySweeper{
		config:    config,
		service:   service,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *expirySweeper) Name() string {
	return "distribution-expiry-sweeper"
}

// Start begins the sweeper's main loop
func (s *expirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting distribution expiry sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Distribution expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Distribution expiry sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
				s.sleep(ctx, s.config.Interval)
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *expirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping distribution expiry sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Distribution expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Distribution expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle expires one batch of rounds. A full batch means more rounds may be
// waiting, so the next cycle starts right away; otherwise the sweeper sleeps.
func (s *expirySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	expired, err := s.expireWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire distributions: %w", err)
	}

	if len(expired) > 0 {
		logger.InfoCtx(ctx, "Sweep cycle completed",
			zap.Duration("duration", s.clock.Since(startTime)),
			zap.Int("expired", len(expired)),
			zap.Int64s("round_numbers", expired),
		)
	}

	if len(expired) >= s.config.BatchSize {
		return nil
	}

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err()
	}
	return nil
}

// expireWithRetry retries a batch that lost a race with a concurrent claim or sweeper.
// Rounds already expired in a failed attempt are skipped by the store on the next one.
func (s *expirySweeper) expireWithRetry(ctx context.Context) ([]int64, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = s.config.MaxRetryTime
	b.RandomizationFactor = 0.5

	var rounds []int64
	operation := func() error {
		expired, err := s.service.ExpireDistributions(ctx, s.config.BatchSize)
		for _, d := range expired {
			rounds = append(rounds, d.RoundNumber)
		}
		if err != nil {
			if domain.IsRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Distribution expiry failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return rounds, err
	}

	return rounds, nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted
func (s *expirySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
