package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// Distribution represents the distributions table - one payout round.
// Everything except the claim counters, status and expiry fields is immutable after creation.
type Distribution struct {
	// ID is the distribution identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// RoundNumber increases by one for every round
	RoundNumber int64 `gorm:"column:round_number;not null;uniqueIndex"`
	// TotalAmount is the vault balance snapshot drained into this round
	TotalAmount decimal.Decimal `gorm:"column:total_amount;not null;type:numeric(38,18)"`
	// TotalCdxStaked is the sum of the stakes of all eligible wallets
	TotalCdxStaked decimal.Decimal `gorm:"column:total_cdx_staked;not null;type:numeric(38,18)"`
	// TotalShares is the sum of all boosted shares
	TotalShares decimal.Decimal `gorm:"column:total_shares;not null;type:numeric"`
	// AmountPerShare is TotalAmount / TotalShares
	AmountPerShare decimal.Decimal `gorm:"column:amount_per_share;not null;type:numeric(48,18)"`
	// EligibleWallets is the number of user shares in the round
	EligibleWallets int `gorm:"column:eligible_wallets;not null"`
	// ClaimedCount is the number of claims recorded against the round
	ClaimedCount int `gorm:"column:claimed_count;not null;default:0"`
	// ClaimedAmount is the sum of all recorded claims
	ClaimedAmount decimal.Decimal `gorm:"column:claimed_amount;not null;type:numeric(38,18);default:0"`
	// UnclaimedAmount is TotalAmount - ClaimedAmount
	UnclaimedAmount decimal.Decimal `gorm:"column:unclaimed_amount;not null;type:numeric(38,18)"`
	// ReclaimedAmount is the unclaimed balance returned to the vault on expiry
	ReclaimedAmount decimal.Decimal `gorm:"column:reclaimed_amount;not null;type:numeric(38,18);default:0"`
	// Status is active, completed or expired
	Status domain.DistributionStatus `gorm:"column:status;not null;type:text;index"`
	// DistributedAt is when the round was created
	DistributedAt time.Time `gorm:"column:distributed_at;not null;type:timestamptz"`
	// ExpiresAt is the end of the claim window
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// ExpiredAt is when the expiry sweep closed the round
	ExpiredAt *time.Time `gorm:"column:expired_at;type:timestamptz"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Distribution model
func (Distribution) TableName() string {
	return "distributions"
}

// IsExpiredAt reports whether the claim window is closed at t
func (d *Distribution) IsExpiredAt(t time.Time) bool {
	return d.Status == domain.DistributionStatusExpired || !t.Before(d.ExpiresAt)
}
