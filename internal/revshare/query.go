package revshare

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// VaultStats returns the vault totals and the distribution cadence
func (s *service) VaultStats(ctx context.Context) (*VaultStats, error) {
	vault, err := s.store.GetVault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}

	rounds, err := s.store.CountDistributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count distributions: %w", err)
	}

	stats := &VaultStats{
		TotalBalance:       vault.TotalBalance,
		TotalDeposited:     vault.TotalDeposited,
		TotalDistributed:   vault.TotalDistributed,
		LastDistributionAt: vault.LastDistributionAt,
		TotalRounds:        rounds,
		MinBalance:         s.minBalance,
		ExpiryPolicy:       s.config.ExpiryPolicy,
		DistributionCron:   s.config.DistributionCron,
	}
	if s.schedule != nil {
		next := s.schedule.Next(s.clock.Now())
		stats.NextDistributionAt = &next
	}

	return stats, nil
}

// PendingRewards lists every share of a wallet with its claim state.
// TotalPending only counts unclaimed rewards of rounds still claimable.
func (s *service) PendingRewards(ctx context.Context, wallet string) (*PendingRewards, error) {
	normalized, err := domain.NormalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	rewards, err := s.store.GetWalletRewards(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet rewards: %w", err)
	}

	now := s.clock.Now()
	result := &PendingRewards{
		WalletAddress: normalized,
		TotalPending:  decimal.Zero,
		Rewards:       make([]PendingReward, 0, len(rewards)),
	}
	for _, r := range rewards {
		isClaimed := r.ClaimedAt != nil
		isExpired := r.DistributionStatus == domain.DistributionStatusExpired || !now.Before(r.ExpiresAt)

		result.Rewards = append(result.Rewards, PendingReward{
			DistributionID:  r.DistributionID,
			RoundNumber:     r.RoundNumber,
			RewardAmount:    r.RewardAmount,
			SharePercentage: r.SharePercentage,
			DistributedAt:   r.DistributedAt,
			ExpiresAt:       r.ExpiresAt,
			IsClaimed:       isClaimed,
			IsExpired:       isExpired,
			ClaimedAt:       r.ClaimedAt,
		})

		if !isClaimed && !isExpired {
			result.TotalPending = result.TotalPending.Add(r.RewardAmount)
		}
	}

	return result, nil
}

// WalletShare computes the share of a wallet from its current stake and boost assets
func (s *service) WalletShare(ctx context.Context, wallet string) (*WalletShare, error) {
	normalized, err := domain.NormalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	input, err := s.scanner.ScanWallet(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallet: %w", err)
	}
	if input == nil {
		return &WalletShare{WalletAddress: normalized}, nil
	}

	return &WalletShare{
		WalletAddress: normalized,
		Eligible:      true,
		Share:         domain.ComputeShare(*input),
	}, nil
}
