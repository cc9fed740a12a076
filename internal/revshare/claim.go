package revshare

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/metrics"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

// Claim converts the share of a wallet in a round into a recorded payout, at most once
func (s *service) Claim(ctx context.Context, distributionID uuid.UUID, wallet string) (*schema.RewardClaim, error) {
	normalized, err := domain.NormalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	claim, err := s.store.CreateClaim(ctx, store.CreateClaimInput{
		DistributionID: distributionID,
		WalletAddress:  normalized,
		ClaimedAt:      s.clock.Now(),
	})
	if err != nil {
		status := metrics.StatusError
		if errors.Is(err, domain.ErrAlreadyClaimed) ||
			errors.Is(err, domain.ErrNoShareForWallet) ||
			errors.Is(err, domain.ErrDistributionExpired) ||
			errors.Is(err, domain.ErrDistributionNotFound) {
			status = metrics.StatusSkipped
		}
		metrics.ClaimsTotal.WithLabelValues(status).Inc()
		return nil, fmt.Errorf("failed to claim reward: %w", err)
	}

	metrics.ClaimsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.ClaimedAmount.Add(claim.ClaimAmount.InexactFloat64())

	logger.InfoCtx(ctx, "Reward claimed",
		zap.String("distributionID", distributionID.String()),
		zap.String("wallet", normalized),
		zap.String("claimAmount", claim.ClaimAmount.String()))

	s.publish(ctx, domain.EventTypeRewardClaimed, domain.RewardClaimedData{
		DistributionID: distributionID.String(),
		WalletAddress:  normalized,
		ClaimAmount:    claim.ClaimAmount.String(),
	})

	return claim, nil
}
