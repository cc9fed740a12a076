package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// GetVault retrieves the vault row
	GetVault(ctx context.Context) (*schema.Vault, error)
	// CreateDeposit records a confirmed deposit and credits the vault atomically
	CreateDeposit(ctx context.Context, input CreateDepositInput) (*schema.RevenueDeposit, error)
	// GetRevenueBreakdown aggregates deposits per source
	GetRevenueBreakdown(ctx context.Context, filter RevenueBreakdownFilter) ([]SourceTotal, error)

	// CreateDistribution drains the vault into a new round. allocate is called with the
	// locked vault balance and decides how it is split.
	CreateDistribution(ctx context.Context, input CreateDistributionInput, allocate AllocateFunc) (*DistributionWithShares, error)
	// GetDistribution retrieves a distribution by ID, nil when it does not exist
	GetDistribution(ctx context.Context, id uuid.UUID) (*schema.Distribution, error)
	// ListDistributions retrieves distributions ordered by round number descending
	ListDistributions(ctx context.Context, limit int, offset uint64) ([]schema.Distribution, uint64, error)
	// CountDistributions returns the number of rounds ever created
	CountDistributions(ctx context.Context) (int64, error)
	// GetUserShares retrieves every share of a distribution ordered by wallet address
	GetUserShares(ctx context.Context, distributionID uuid.UUID) ([]schema.UserShare, error)

	// CreateClaim records the claim of a wallet against a distribution
	CreateClaim(ctx context.Context, input CreateClaimInput) (*schema.RewardClaim, error)
	// GetWalletRewards lists every share of a wallet along with its claim state
	GetWalletRewards(ctx context.Context, wallet string) ([]WalletReward, error)

	// GetExpiredDistributions lists active distributions whose claim window closed at or before now
	GetExpiredDistributions(ctx context.Context, now time.Time, limit int) ([]schema.Distribution, error)
	// ExpireDistribution closes the claim window of a distribution according to the policy
	ExpireDistribution(ctx context.Context, input ExpireDistributionInput) (*schema.Distribution, error)

	// ListStakers returns every wallet with a positive stake
	ListStakers(ctx context.Context) ([]domain.StakePosition, error)
	// StakedBalance returns the stake of a wallet, zero when it has none
	StakedBalance(ctx context.Context, wallet string) (decimal.Decimal, error)
	// OwnedCount returns the number of collectibles held by a wallet
	OwnedCount(ctx context.Context, wallet string) (int, error)
	// EquippedCount returns the number of relics a wallet has equipped
	EquippedCount(ctx context.Context, wallet string) (int, error)
}

// CreateDepositInput represents the data needed to record a deposit
type CreateDepositInput struct {
	Amount      decimal.Decimal
	Source      domain.RevenueSource
	SourceID    *string
	Description *string
	TxReference *string
	Metadata    datatypes.JSON
	CreatedAt   time.Time
}

// RevenueBreakdownFilter narrows the deposits aggregated by GetRevenueBreakdown
type RevenueBreakdownFilter struct {
	// Sources restricts the aggregation to these sources, all when empty
	Sources []domain.RevenueSource
	// From is inclusive
	From *time.Time
	// To is exclusive
	To *time.Time
}

// SourceTotal is the aggregated revenue of one source
type SourceTotal struct {
	Source domain.RevenueSource `gorm:"column:source"`
	Total  decimal.Decimal      `gorm:"column:total"`
	Count  int64                `gorm:"column:count"`
}

// AllocateFunc splits the locked vault balance into shares.
// It runs while the vault row is locked and must not query the store.
// Returning an error aborts the round and leaves the vault untouched.
type AllocateFunc func(ctx context.Context, balance decimal.Decimal) (*domain.Allocation, error)

// CreateDistributionInput represents the data needed to create a distribution round
type CreateDistributionInput struct {
	Now time.Time
	// TTL is how long the round stays claimable
	TTL time.Duration
}

// DistributionWithShares is a distribution together with its user shares
type DistributionWithShares struct {
	Distribution schema.Distribution
	Shares       []schema.UserShare
}

// CreateClaimInput represents the data needed to record a claim
type CreateClaimInput struct {
	DistributionID uuid.UUID
	// WalletAddress must be normalized
	WalletAddress string
	ClaimedAt     time.Time
}

// WalletReward is a user share joined with its distribution and claim state
type WalletReward struct {
	DistributionID     uuid.UUID                 `gorm:"column:distribution_id"`
	RoundNumber        int64                     `gorm:"column:round_number"`
	RewardAmount       decimal.Decimal           `gorm:"column:reward_amount"`
	SharePercentage    decimal.Decimal           `gorm:"column:share_percentage"`
	DistributedAt      time.Time                 `gorm:"column:distributed_at"`
	ExpiresAt          time.Time                 `gorm:"column:expires_at"`
	DistributionStatus domain.DistributionStatus `gorm:"column:status"`
	ClaimedAt          *time.Time                `gorm:"column:claimed_at"`
}

// ExpireDistributionInput represents the data needed to expire a distribution
type ExpireDistributionInput struct {
	ID     uuid.UUID
	Now    time.Time
	Policy domain.ExpiryPolicy
}
