package domain

import "github.com/shopspring/decimal"

// MaxBoostedRelics caps how many equipped relics count towards the relic boost
const MaxBoostedRelics = 3

type boostTier struct {
	minCount   int
	multiplier decimal.Decimal
}

// nftBoostTiers is ordered highest threshold first
var nftBoostTiers = []boostTier{
	{minCount: 10, multiplier: decimal.RequireFromString("2.00")},
	{minCount: 5, multiplier: decimal.RequireFromString("1.50")},
	{minCount: 3, multiplier: decimal.RequireFromString("1.25")},
	{minCount: 1, multiplier: decimal.RequireFromString("1.10")},
}

// relicBoosts is indexed by the clamped equipped relic count
var relicBoosts = [MaxBoostedRelics + 1]decimal.Decimal{
	decimal.RequireFromString("1.00"),
	decimal.RequireFromString("1.15"),
	decimal.RequireFromString("1.35"),
	decimal.RequireFromString("1.60"),
}

// NoBoost is the neutral multiplier
var NoBoost = decimal.NewFromInt(1)

// NFTBoost returns the share multiplier for the number of owned collectibles
func NFTBoost(count int) decimal.Decimal {
	for _, tier := range nftBoostTiers {
		if count >= tier.minCount {
			return tier.multiplier
		}
	}
	return NoBoost
}

// RelicBoost returns the share multiplier for the number of equipped relics.
// Counts above MaxBoostedRelics earn the same boost as MaxBoostedRelics.
func RelicBoost(count int) decimal.Decimal {
	if count <= 0 {
		return NoBoost
	}
	if count > MaxBoostedRelics {
		count = MaxBoostedRelics
	}
	return relicBoosts[count]
}
