package dto

import (
	"encoding/json"
	"time"
)

// DepositResponse represents a confirmed revenue deposit
type DepositResponse struct {
	ID          string          `json:"id"`
	Amount      string          `json:"amount"`
	Source      string          `json:"source"`
	SourceID    *string         `json:"source_id,omitempty"`
	Description *string         `json:"description,omitempty"`
	TxReference *string         `json:"tx_reference,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DistributionResponse represents a distribution round
type DistributionResponse struct {
	ID              string              `json:"id"`
	RoundNumber     int64               `json:"round_number"`
	TotalAmount     string              `json:"total_amount"`
	TotalCdxStaked  string              `json:"total_cdx_staked"`
	TotalShares     string              `json:"total_shares"`
	AmountPerShare  string              `json:"amount_per_share"`
	EligibleWallets int                 `json:"eligible_wallets"`
	ClaimedCount    int                 `json:"claimed_count"`
	ClaimedAmount   string              `json:"claimed_amount"`
	UnclaimedAmount string              `json:"unclaimed_amount"`
	ReclaimedAmount string              `json:"reclaimed_amount"`
	Status          string              `json:"status"`
	DistributedAt   time.Time           `json:"distributed_at"`
	ExpiresAt       time.Time           `json:"expires_at"`
	ExpiredAt       *time.Time          `json:"expired_at,omitempty"`
	Shares          []UserShareResponse `json:"shares,omitempty"`
}

// UserShareResponse represents the share of one wallet in a round
type UserShareResponse struct {
	WalletAddress        string `json:"wallet_address"`
	CdxStaked            string `json:"cdx_staked"`
	BaseShares           string `json:"base_shares"`
	NFTCount             int    `json:"nft_count"`
	RelicCount           int    `json:"relic_count"`
	NFTBoostMultiplier   string `json:"nft_boost_multiplier"`
	RelicBoostMultiplier string `json:"relic_boost_multiplier"`
	TotalShares          string `json:"total_shares"`
	SharePercentage      string `json:"share_percentage"`
	RewardAmount         string `json:"reward_amount"`
	GovernanceWeight     string `json:"governance_weight"`
}

// DistributionListResponse represents a page of the round history
type DistributionListResponse struct {
	Distributions []DistributionResponse `json:"distributions"`
	Offset        *uint64                `json:"offset,omitempty"` // Offset of the next page, absent on the last page
	Total         uint64                 `json:"total"`
}

// ClaimResponse represents a recorded claim
type ClaimResponse struct {
	ID             string    `json:"id"`
	DistributionID string    `json:"distribution_id"`
	WalletAddress  string    `json:"wallet_address"`
	ClaimAmount    string    `json:"claim_amount"`
	ClaimedAt      time.Time `json:"claimed_at"`
}

// VaultStatsResponse represents the vault totals and the distribution cadence
type VaultStatsResponse struct {
	TotalBalance       string     `json:"total_balance"`
	TotalDeposited     string     `json:"total_deposited"`
	TotalDistributed   string     `json:"total_distributed"`
	LastDistributionAt *time.Time `json:"last_distribution_at"`
	TotalRounds        int64      `json:"total_rounds"`
	MinBalance         string     `json:"min_balance"`
	ExpiryPolicy       string     `json:"expiry_policy"`
	DistributionCron   string     `json:"distribution_cron,omitempty"`
	NextDistributionAt *time.Time `json:"next_distribution_at,omitempty"`
}

// PendingRewardsResponse represents the reward history of a wallet
type PendingRewardsResponse struct {
	WalletAddress string                  `json:"wallet_address"`
	TotalPending  string                  `json:"total_pending"`
	Rewards       []PendingRewardResponse `json:"rewards"`
}

// PendingRewardResponse represents the share of a wallet in one round
type PendingRewardResponse struct {
	DistributionID  string     `json:"distribution_id"`
	RoundNumber     int64      `json:"round_number"`
	RewardAmount    string     `json:"reward_amount"`
	SharePercentage string     `json:"share_percentage"`
	DistributedAt   time.Time  `json:"distributed_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	IsClaimed       bool       `json:"is_claimed"`
	IsExpired       bool       `json:"is_expired"`
	ClaimedAt       *time.Time `json:"claimed_at,omitempty"`
}

// WalletShareResponse represents the share a wallet would hold in a round created now
type WalletShareResponse struct {
	WalletAddress        string `json:"wallet_address"`
	Eligible             bool   `json:"eligible"`
	CdxStaked            string `json:"cdx_staked"`
	NFTCount             int    `json:"nft_count"`
	RelicCount           int    `json:"relic_count"`
	NFTBoostMultiplier   string `json:"nft_boost_multiplier"`
	RelicBoostMultiplier string `json:"relic_boost_multiplier"`
	TotalShares          string `json:"total_shares"`
	GovernanceWeight     string `json:"governance_weight"`
}

// RevenueBreakdownResponse represents deposits aggregated per source
type RevenueBreakdownResponse struct {
	Sources []SourceTotalResponse `json:"sources"`
	Total   string                `json:"total"`
	Count   int64                 `json:"count"`
}

// SourceTotalResponse represents the revenue of one source
type SourceTotalResponse struct {
	Source string `json:"source"`
	Total  string `json:"total"`
	Count  int64  `json:"count"`
}

// HealthResponse represents the response of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
