package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserShare represents the user_shares table - the immutable share of one wallet in one round
type UserShare struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	DistributionID uuid.UUID `gorm:"column:distribution_id;not null;type:uuid;uniqueIndex:idx_user_shares_distribution_wallet,priority:1"`
	// WalletAddress is stored lower-cased
	WalletAddress        string          `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_user_shares_distribution_wallet,priority:2"`
	CdxStaked            decimal.Decimal `gorm:"column:cdx_staked;not null;type:numeric(38,18)"`
	BaseShares           decimal.Decimal `gorm:"column:base_shares;not null;type:numeric(38,18)"`
	NFTCount             int             `gorm:"column:nft_count;not null;default:0"`
	RelicCount           int             `gorm:"column:relic_count;not null;default:0"`
	NFTBoostMultiplier   decimal.Decimal `gorm:"column:nft_boost_multiplier;not null;type:numeric(10,4)"`
	RelicBoostMultiplier decimal.Decimal `gorm:"column:relic_boost_multiplier;not null;type:numeric(10,4)"`
	TotalShares          decimal.Decimal `gorm:"column:total_shares;not null;type:numeric"`
	SharePercentage      decimal.Decimal `gorm:"column:share_percentage;not null;type:numeric(12,8)"`
	RewardAmount         decimal.Decimal `gorm:"column:reward_amount;not null;type:numeric(38,18)"`
	GovernanceWeight     decimal.Decimal `gorm:"column:governance_weight;not null;type:numeric"`
	CreatedAt            time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserShare model
func (UserShare) TableName() string {
	return "user_shares"
}

// UserShareFieldCount is the number of inserted columns per user share
const UserShareFieldCount = 14
