package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RewardClaim represents the reward_claims table - at most one claim per wallet per round
type RewardClaim struct {
	// ID is the claim identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// DistributionID references the claimed round
	DistributionID uuid.UUID `gorm:"column:distribution_id;not null;type:uuid;uniqueIndex:idx_reward_claims_distribution_wallet,priority:1"`
	// WalletAddress is stored lower-cased
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_reward_claims_distribution_wallet,priority:2"`
	// ClaimAmount is copied from the matching user share reward
	ClaimAmount decimal.Decimal `gorm:"column:claim_amount;not null;type:numeric(38,18)"`
	// ClaimedAt is when the claim was recorded
	ClaimedAt time.Time `gorm:"column:claimed_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the RewardClaim model
func (RewardClaim) TableName() string {
	return "reward_claims"
}
