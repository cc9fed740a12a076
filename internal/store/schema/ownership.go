package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// The tables below are owned by the staking, collectible and relic subsystems.
// The ledger only reads them when it snapshots eligibility.

// StakePosition represents the stake_positions table
type StakePosition struct {
	WalletAddress string          `gorm:"column:wallet_address;primaryKey;type:text"`
	CdxStaked     decimal.Decimal `gorm:"column:cdx_staked;not null;type:numeric(38,18);default:0"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the StakePosition model
func (StakePosition) TableName() string {
	return "stake_positions"
}

// NFTOwnership represents the nft_ownerships table - one row per owned collectible
type NFTOwnership struct {
	TokenID       string `gorm:"column:token_id;primaryKey;type:text"`
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index"`
}

// TableName specifies the table name for the NFTOwnership model
func (NFTOwnership) TableName() string {
	return "nft_ownerships"
}

// RelicInventory represents the relic_inventory table - one row per owned relic
type RelicInventory struct {
	RelicID       string `gorm:"column:relic_id;primaryKey;type:text"`
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index"`
	IsEquipped    bool   `gorm:"column:is_equipped;not null;default:false"`
}

// TableName specifies the table name for the RelicInventory model
func (RelicInventory) TableName() string {
	return "relic_inventory"
}
