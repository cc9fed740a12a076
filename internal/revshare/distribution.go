package revshare

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/metrics"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

// CreateDistribution drains the vault into a new round.
//
// The eligibility snapshot is taken before the vault is locked; the lock is only held while
// the threshold is checked and the balance allocated, so the balance split is exactly the
// balance zeroed. Any failure leaves the vault untouched.
func (s *service) CreateDistribution(ctx context.Context) (*DistributionSummary, error) {
	start := s.clock.Now()

	vault, err := s.store.GetVault(ctx)
	if err != nil {
		metrics.DistributionsTotal.WithLabelValues(metrics.StatusError).Inc()
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}
	if err := s.checkThreshold(vault.TotalBalance); err != nil {
		metrics.DistributionsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return nil, fmt.Errorf("failed to create distribution: %w", err)
	}

	inputs, err := s.scanner.Scan(ctx)
	if err != nil {
		metrics.DistributionsTotal.WithLabelValues(metrics.StatusError).Inc()
		return nil, fmt.Errorf("failed to scan eligibility: %w", err)
	}
	if len(inputs) == 0 {
		metrics.DistributionsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return nil, fmt.Errorf("failed to create distribution: %w", domain.ErrNoEligibleStakers)
	}

	var residual decimal.Decimal
	var residualWallet string

	allocate := func(_ context.Context, balance decimal.Decimal) (*domain.Allocation, error) {
		// a concurrent round may have drained the vault since it was read
		if err := s.checkThreshold(balance); err != nil {
			return nil, err
		}

		allocation, err := domain.Allocate(balance, inputs)
		if err != nil {
			return nil, err
		}
		residual = allocation.Residual
		residualWallet = allocation.ResidualWallet

		return allocation, nil
	}

	result, err := s.store.CreateDistribution(ctx, store.CreateDistributionInput{
		Now: start,
		TTL: s.config.RoundTTL,
	}, allocate)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrNoEligibleStakers) {
			metrics.DistributionsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		} else {
			metrics.DistributionsTotal.WithLabelValues(metrics.StatusError).Inc()
		}
		return nil, fmt.Errorf("failed to create distribution: %w", err)
	}

	distribution := result.Distribution
	metrics.DistributionsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.DistributedAmount.Add(distribution.TotalAmount.InexactFloat64())
	metrics.EligibleWallets.Set(float64(distribution.EligibleWallets))
	metrics.DistributionDuration.Observe(s.clock.Since(start).Seconds())

	logger.InfoCtx(ctx, "Distribution round created",
		zap.String("distributionID", distribution.ID.String()),
		zap.Int64("roundNumber", distribution.RoundNumber),
		zap.String("totalAmount", distribution.TotalAmount.String()),
		zap.Int("eligibleWallets", distribution.EligibleWallets),
		zap.String("residual", residual.String()),
		zap.String("residualWallet", residualWallet))

	s.publish(ctx, domain.EventTypeDistributionCreated, domain.DistributionCreatedData{
		DistributionID:  distribution.ID.String(),
		RoundNumber:     distribution.RoundNumber,
		TotalAmount:     distribution.TotalAmount.String(),
		EligibleWallets: distribution.EligibleWallets,
		ExpiresAt:       distribution.ExpiresAt,
	})

	return &DistributionSummary{
		Distribution: distribution,
		Shares:       result.Shares,
	}, nil
}

// checkThreshold fails with ErrInsufficientBalance when balance cannot fund a round
func (s *service) checkThreshold(balance decimal.Decimal) error {
	if balance.LessThan(s.minBalance) {
		return fmt.Errorf("%w: balance %s is below the minimum %s",
			domain.ErrInsufficientBalance, balance.String(), s.minBalance.String())
	}
	// a zero threshold still needs something to distribute
	if !balance.IsPositive() {
		return fmt.Errorf("%w: vault is empty", domain.ErrInsufficientBalance)
	}
	return nil
}

// GetDistribution returns a round and its shares
func (s *service) GetDistribution(ctx context.Context, id uuid.UUID) (*DistributionSummary, error) {
	distribution, err := s.store.GetDistribution(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	if distribution == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDistributionNotFound, id)
	}

	shares, err := s.store.GetUserShares(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user shares: %w", err)
	}

	return &DistributionSummary{
		Distribution: *distribution,
		Shares:       shares,
	}, nil
}

// ListDistributions returns a page of the round history, newest first
func (s *service) ListDistributions(ctx context.Context, limit int, offset uint64) ([]schema.Distribution, uint64, error) {
	if limit <= 0 {
		return nil, 0, fmt.Errorf("limit must be positive, got %d", limit)
	}

	distributions, total, err := s.store.ListDistributions(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list distributions: %w", err)
	}

	return distributions, total, nil
}

// ExpireDistributions applies the expiry policy to rounds whose claim window closed.
// Each round expires in its own transaction; the first failure stops the batch.
func (s *service) ExpireDistributions(ctx context.Context, limit int) ([]schema.Distribution, error) {
	now := s.clock.Now()

	candidates, err := s.store.GetExpiredDistributions(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get expired distributions: %w", err)
	}

	expired := make([]schema.Distribution, 0, len(candidates))
	for _, candidate := range candidates {
		distribution, err := s.store.ExpireDistribution(ctx, store.ExpireDistributionInput{
			ID:     candidate.ID,
			Now:    now,
			Policy: s.config.ExpiryPolicy,
		})
		if err != nil {
			return expired, fmt.Errorf("failed to expire distribution %s: %w", candidate.ID, err)
		}
		// claimed out or expired by another sweeper meanwhile
		if distribution == nil {
			continue
		}

		expired = append(expired, *distribution)
		metrics.ExpiredDistributionsTotal.WithLabelValues(string(s.config.ExpiryPolicy)).Inc()
		metrics.ReclaimedAmount.Add(distribution.ReclaimedAmount.InexactFloat64())

		logger.InfoCtx(ctx, "Distribution round expired",
			zap.String("distributionID", distribution.ID.String()),
			zap.Int64("roundNumber", distribution.RoundNumber),
			zap.String("policy", string(s.config.ExpiryPolicy)),
			zap.String("reclaimedAmount", distribution.ReclaimedAmount.String()))

		s.publish(ctx, domain.EventTypeDistributionExpired, domain.DistributionExpiredData{
			DistributionID:  distribution.ID.String(),
			RoundNumber:     distribution.RoundNumber,
			ReclaimedAmount: distribution.ReclaimedAmount.String(),
			Policy:          s.config.ExpiryPolicy,
		})
	}

	return expired, nil
}
