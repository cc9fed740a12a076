package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/revshare"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

// amount renders a monetary value with the fixed number of fractional digits of the minimal unit
func amount(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountScale)
}

// MapDepositToDTO maps a schema.RevenueDeposit to DepositResponse
func MapDepositToDTO(deposit *schema.RevenueDeposit) *DepositResponse {
	var metadata json.RawMessage
	if len(deposit.Metadata) > 0 {
		metadata = json.RawMessage(deposit.Metadata)
	}

	return &DepositResponse{
		ID:          deposit.ID.String(),
		Amount:      amount(deposit.Amount),
		Source:      string(deposit.Source),
		SourceID:    deposit.SourceID,
		Description: deposit.Description,
		TxReference: deposit.TxReference,
		Metadata:    metadata,
		Status:      string(deposit.Status),
		CreatedAt:   deposit.CreatedAt,
	}
}

// MapDistributionToDTO maps a schema.Distribution to DistributionResponse
func MapDistributionToDTO(distribution *schema.Distribution) *DistributionResponse {
	return &DistributionResponse{
		ID:              distribution.ID.String(),
		RoundNumber:     distribution.RoundNumber,
		TotalAmount:     amount(distribution.TotalAmount),
		TotalCdxStaked:  distribution.TotalCdxStaked.String(),
		TotalShares:     distribution.TotalShares.String(),
		AmountPerShare:  distribution.AmountPerShare.String(),
		EligibleWallets: distribution.EligibleWallets,
		ClaimedCount:    distribution.ClaimedCount,
		ClaimedAmount:   amount(distribution.ClaimedAmount),
		UnclaimedAmount: amount(distribution.UnclaimedAmount),
		ReclaimedAmount: amount(distribution.ReclaimedAmount),
		Status:          string(distribution.Status),
		DistributedAt:   distribution.DistributedAt,
		ExpiresAt:       distribution.ExpiresAt,
		ExpiredAt:       distribution.ExpiredAt,
	}
}

// MapDistributionSummaryToDTO maps a round and its shares to DistributionResponse
func MapDistributionSummaryToDTO(summary *revshare.DistributionSummary) *DistributionResponse {
	resp := MapDistributionToDTO(&summary.Distribution)
	resp.Shares = make([]UserShareResponse, len(summary.Shares))
	for i := range summary.Shares {
		resp.Shares[i] = *MapUserShareToDTO(&summary.Shares[i])
	}
	return resp
}

// MapUserShareToDTO maps a schema.UserShare to UserShareResponse
func MapUserShareToDTO(share *schema.UserShare) *UserShareResponse {
	return &UserShareResponse{
		WalletAddress:        share.WalletAddress,
		CdxStaked:            share.CdxStaked.String(),
		BaseShares:           share.BaseShares.String(),
		NFTCount:             share.NFTCount,
		RelicCount:           share.RelicCount,
		NFTBoostMultiplier:   share.NFTBoostMultiplier.String(),
		RelicBoostMultiplier: share.RelicBoostMultiplier.String(),
		TotalShares:          share.TotalShares.String(),
		SharePercentage:      share.SharePercentage.StringFixed(domain.PercentageScale),
		RewardAmount:         amount(share.RewardAmount),
		GovernanceWeight:     share.GovernanceWeight.String(),
	}
}

// MapClaimToDTO maps a schema.RewardClaim to ClaimResponse
func MapClaimToDTO(claim *schema.RewardClaim) *ClaimResponse {
	return &ClaimResponse{
		ID:             claim.ID.String(),
		DistributionID: claim.DistributionID.String(),
		WalletAddress:  claim.WalletAddress,
		ClaimAmount:    amount(claim.ClaimAmount),
		ClaimedAt:      claim.ClaimedAt,
	}
}

// MapVaultStatsToDTO maps revshare.VaultStats to VaultStatsResponse
func MapVaultStatsToDTO(stats *revshare.VaultStats) *VaultStatsResponse {
	return &VaultStatsResponse{
		TotalBalance:       amount(stats.TotalBalance),
		TotalDeposited:     amount(stats.TotalDeposited),
		TotalDistributed:   amount(stats.TotalDistributed),
		LastDistributionAt: stats.LastDistributionAt,
		TotalRounds:        stats.TotalRounds,
		MinBalance:         amount(stats.MinBalance),
		ExpiryPolicy:       string(stats.ExpiryPolicy),
		DistributionCron:   stats.DistributionCron,
		NextDistributionAt: stats.NextDistributionAt,
	}
}

// MapPendingRewardsToDTO maps revshare.PendingRewards to PendingRewardsResponse
func MapPendingRewardsToDTO(pending *revshare.PendingRewards) *PendingRewardsResponse {
	rewards := make([]PendingRewardResponse, len(pending.Rewards))
	for i, r := range pending.Rewards {
		rewards[i] = PendingRewardResponse{
			DistributionID:  r.DistributionID.String(),
			RoundNumber:     r.RoundNumber,
			RewardAmount:    amount(r.RewardAmount),
			SharePercentage: r.SharePercentage.StringFixed(domain.PercentageScale),
			DistributedAt:   r.DistributedAt,
			ExpiresAt:       r.ExpiresAt,
			IsClaimed:       r.IsClaimed,
			IsExpired:       r.IsExpired,
			ClaimedAt:       r.ClaimedAt,
		}
	}

	return &PendingRewardsResponse{
		WalletAddress: pending.WalletAddress,
		TotalPending:  amount(pending.TotalPending),
		Rewards:       rewards,
	}
}

// MapWalletShareToDTO maps revshare.WalletShare to WalletShareResponse
func MapWalletShareToDTO(walletShare *revshare.WalletShare) *WalletShareResponse {
	share := walletShare.Share
	return &WalletShareResponse{
		WalletAddress:        walletShare.WalletAddress,
		Eligible:             walletShare.Eligible,
		CdxStaked:            share.CdxStaked.String(),
		NFTCount:             share.NFTCount,
		RelicCount:           share.RelicCount,
		NFTBoostMultiplier:   share.NFTBoostMultiplier.String(),
		RelicBoostMultiplier: share.RelicBoostMultiplier.String(),
		TotalShares:          share.TotalShares.String(),
		GovernanceWeight:     share.GovernanceWeight.String(),
	}
}

// MapRevenueBreakdownToDTO maps per-source totals to RevenueBreakdownResponse
func MapRevenueBreakdownToDTO(totals []store.SourceTotal) *RevenueBreakdownResponse {
	resp := &RevenueBreakdownResponse{
		Sources: make([]SourceTotalResponse, len(totals)),
	}

	total := decimal.Zero
	for i, t := range totals {
		resp.Sources[i] = SourceTotalResponse{
			Source: string(t.Source),
			Total:  amount(t.Total),
			Count:  t.Count,
		}
		total = total.Add(t.Total)
		resp.Count += t.Count
	}
	resp.Total = amount(total)

	return resp
}
