package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// RevenueDeposit represents the revenue_deposits table - an append-only log of incoming revenue
type RevenueDeposit struct {
	// ID is the deposit identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Amount is the deposited revenue, always positive
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,18)"`
	// Source is the subsystem that realized the revenue
	Source domain.RevenueSource `gorm:"column:source;not null;type:text"`
	// SourceID optionally identifies the originating entity (order, listing, plan...)
	SourceID *string `gorm:"column:source_id;type:text"`
	// Description is a free-form note
	Description *string `gorm:"column:description;type:text"`
	// TxReference is the external transaction reference, unique per source when present
	TxReference *string `gorm:"column:tx_reference;type:text"`
	// Metadata holds producer-specific attributes
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// Status is always confirmed once persisted
	Status domain.DepositStatus `gorm:"column:status;not null;type:text"`
	// CreatedAt is when the deposit was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RevenueDeposit model
func (RevenueDeposit) TableName() string {
	return "revenue_deposits"
}
