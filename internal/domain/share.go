package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ShareInput is the raw eligibility snapshot of one stakeholder
type ShareInput struct {
	WalletAddress string
	CdxStaked     decimal.Decimal
	NFTCount      int
	RelicCount    int
}

// Share is the weighted share of one stakeholder in a round.
// SharePercentage and RewardAmount are only known once the whole round is allocated.
type Share struct {
	WalletAddress        string
	CdxStaked            decimal.Decimal
	NFTCount             int
	RelicCount           int
	BaseShares           decimal.Decimal
	NFTBoostMultiplier   decimal.Decimal
	RelicBoostMultiplier decimal.Decimal
	TotalShares          decimal.Decimal
	GovernanceWeight     decimal.Decimal
	SharePercentage      decimal.Decimal
	RewardAmount         decimal.Decimal
}

// Allocation is the result of splitting a payout pool over a set of shares
type Allocation struct {
	TotalAmount    decimal.Decimal
	TotalCdxStaked decimal.Decimal
	TotalShares    decimal.Decimal
	AmountPerShare decimal.Decimal
	// Residual is the rounding remainder credited to ResidualWallet
	Residual       decimal.Decimal
	ResidualWallet string
	Shares         []Share
}

// ComputeShare derives the weighted share of one stakeholder
func ComputeShare(input ShareInput) Share {
	nftBoost := NFTBoost(input.NFTCount)
	relicBoost := RelicBoost(input.RelicCount)
	baseShares := input.CdxStaked
	totalShares := baseShares.Mul(nftBoost).Mul(relicBoost)

	return Share{
		WalletAddress:        input.WalletAddress,
		CdxStaked:            input.CdxStaked,
		NFTCount:             input.NFTCount,
		RelicCount:           input.RelicCount,
		BaseShares:           baseShares,
		NFTBoostMultiplier:   nftBoost,
		RelicBoostMultiplier: relicBoost,
		TotalShares:          totalShares,
		GovernanceWeight:     totalShares,
		SharePercentage:      decimal.Zero,
		RewardAmount:         decimal.Zero,
	}
}

// Allocate splits pool over the given stakeholders pro rata to their total shares.
//
// Each reward is truncated to AmountScale; the remainder is credited to the largest
// share (ties go to the smallest wallet address), so the rewards always sum to pool.
func Allocate(pool decimal.Decimal, inputs []ShareInput) (*Allocation, error) {
	if len(inputs) == 0 {
		return nil, ErrNoEligibleStakers
	}
	if !pool.IsPositive() {
		return nil, fmt.Errorf("%w: pool must be positive, got %s", ErrInvalidAmount, pool.String())
	}

	shares := make([]Share, 0, len(inputs))
	totalShares := decimal.Zero
	totalStaked := decimal.Zero
	for _, input := range inputs {
		if !input.CdxStaked.IsPositive() {
			continue
		}
		share := ComputeShare(input)
		shares = append(shares, share)
		totalShares = totalShares.Add(share.TotalShares)
		totalStaked = totalStaked.Add(share.CdxStaked)
	}
	if len(shares) == 0 || !totalShares.IsPositive() {
		return nil, ErrNoEligibleStakers
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].WalletAddress < shares[j].WalletAddress
	})

	hundred := decimal.NewFromInt(100)
	distributed := decimal.Zero
	largest := 0
	for i := range shares {
		share := &shares[i]
		share.RewardAmount = share.TotalShares.Mul(pool).DivRound(totalShares, ShareScale).Truncate(AmountScale)
		share.SharePercentage = share.TotalShares.Mul(hundred).DivRound(totalShares, PercentageScale)
		distributed = distributed.Add(share.RewardAmount)

		// shares are sorted by wallet, so strict > keeps the smallest wallet on ties
		if share.TotalShares.GreaterThan(shares[largest].TotalShares) {
			largest = i
		}
	}

	residual := pool.Sub(distributed)
	if residual.IsNegative() {
		return nil, fmt.Errorf("allocation overshoots pool by %s", residual.Neg().String())
	}
	shares[largest].RewardAmount = shares[largest].RewardAmount.Add(residual)

	return &Allocation{
		TotalAmount:    pool,
		TotalCdxStaked: totalStaked,
		TotalShares:    totalShares,
		AmountPerShare: pool.DivRound(totalShares, ShareScale),
		Residual:       residual,
		ResidualWallet: shares[largest].WalletAddress,
		Shares:         shares,
	}, nil
}
