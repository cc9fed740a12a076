package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultID is the primary key of the single vault row
const VaultID = 1

// Vault represents the vault table - the single accumulator of undistributed revenue
type Vault struct {
	// ID is always VaultID
	ID int16 `gorm:"column:id;primaryKey"`
	// TotalBalance is the revenue deposited but not yet distributed
	TotalBalance decimal.Decimal `gorm:"column:total_balance;not null;type:numeric(38,18);default:0"`
	// TotalDeposited is the lifetime sum of all deposits
	TotalDeposited decimal.Decimal `gorm:"column:total_deposited;not null;type:numeric(38,18);default:0"`
	// TotalDistributed is the lifetime sum moved into distribution rounds, net of expiry rollovers
	TotalDistributed decimal.Decimal `gorm:"column:total_distributed;not null;type:numeric(38,18);default:0"`
	// LastDistributionAt is when the latest round drained the vault
	LastDistributionAt *time.Time `gorm:"column:last_distribution_at;type:timestamptz"`
	// Version is incremented by every mutation of the row
	Version int64 `gorm:"column:version;not null;default:0"`
	// CreatedAt is the timestamp when the vault was initialized
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the latest mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Vault model
func (Vault) TableName() string {
	return "vault"
}
