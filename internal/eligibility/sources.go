package eligibility

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// StakeSource exposes the stake positions owned by the staking subsystem
//
//go:generate mockgen -source=sources.go -destination=../mocks/eligibility_sources.go -package=mocks -mock_names=StakeSource=MockStakeSource,CollectibleSource=MockCollectibleSource,RelicSource=MockRelicSource
type StakeSource interface {
	// ListStakers returns every wallet with a positive stake
	ListStakers(ctx context.Context) ([]domain.StakePosition, error)
	// StakedBalance returns the stake of a wallet, zero when it has none
	StakedBalance(ctx context.Context, wallet string) (decimal.Decimal, error)
}

// CollectibleSource counts the collectibles owned by a wallet
type CollectibleSource interface {
	OwnedCount(ctx context.Context, wallet string) (int, error)
}

// RelicSource counts the relics a wallet has equipped
type RelicSource interface {
	EquippedCount(ctx context.Context, wallet string) (int, error)
}
