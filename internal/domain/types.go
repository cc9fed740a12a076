package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// RevenueSource identifies the platform subsystem a deposit comes from
type RevenueSource string

const (
	RevenueSourceMarketplace  RevenueSource = "marketplace"
	RevenueSourceTradingBot   RevenueSource = "trading_bot"
	RevenueSourceLaunchpad    RevenueSource = "launchpad"
	RevenueSourceEcommerce    RevenueSource = "ecommerce"
	RevenueSourceStakingFees  RevenueSource = "staking_fees"
	RevenueSourceSubscription RevenueSource = "subscription"
	RevenueSourceFlashSale    RevenueSource = "flash_sale"
)

// RevenueSources lists every accepted revenue source in a stable order
var RevenueSources = []RevenueSource{
	RevenueSourceMarketplace,
	RevenueSourceTradingBot,
	RevenueSourceLaunchpad,
	RevenueSourceEcommerce,
	RevenueSourceStakingFees,
	RevenueSourceSubscription,
	RevenueSourceFlashSale,
}

// Valid checks if the source is one of the known revenue sources
func (s RevenueSource) Valid() bool {
	for _, src := range RevenueSources {
		if s == src {
			return true
		}
	}
	return false
}

// ParseRevenueSource parses a revenue source, case-insensitively
func ParseRevenueSource(s string) (RevenueSource, error) {
	src := RevenueSource(strings.ToLower(strings.TrimSpace(s)))
	if !src.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSource, s)
	}
	return src, nil
}

// DepositStatus is the status of a revenue deposit
type DepositStatus string

const (
	DepositStatusConfirmed DepositStatus = "confirmed"
)

// DistributionStatus is the lifecycle state of a distribution round
type DistributionStatus string

const (
	DistributionStatusActive    DistributionStatus = "active"
	DistributionStatusCompleted DistributionStatus = "completed"
	DistributionStatusExpired   DistributionStatus = "expired"
)

// ExpiryPolicy decides what happens to the unclaimed balance of an expired round
type ExpiryPolicy string

const (
	// ExpiryPolicyRollover returns unclaimed funds to the vault for the next round
	ExpiryPolicyRollover ExpiryPolicy = "rollover"
	// ExpiryPolicyForfeit keeps unclaimed funds counted as distributed
	ExpiryPolicyForfeit ExpiryPolicy = "forfeit"
)

// Valid checks if the expiry policy is known
func (p ExpiryPolicy) Valid() bool {
	return p == ExpiryPolicyRollover || p == ExpiryPolicyForfeit
}

const (
	// AmountScale is the number of fractional digits of the minimal currency unit
	AmountScale int32 = 6
	// ShareScale is the precision kept for shares, multipliers and the per-share rate
	ShareScale int32 = 18
	// PercentageScale is the precision kept for share percentages
	PercentageScale int32 = 8

	// DefaultRoundTTL is how long a distribution round stays claimable
	DefaultRoundTTL = 90 * 24 * time.Hour
)

// MinimalUnit is the smallest representable currency amount
var MinimalUnit = decimal.New(1, -AmountScale)

// ParseAmount parses a positive monetary amount with at most AmountScale fractional digits
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateAmount checks that an amount is positive and representable in minimal units
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidAmount, amount.String())
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: more than %d fractional digits in %s", ErrInvalidAmount, AmountScale, amount.String())
	}
	return nil
}

// NormalizeWallet validates a hex wallet address and returns its lower-case form.
// Every wallet comparison in the ledger happens on the normalized value.
func NormalizeWallet(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWallet, address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

// StakePosition is the stake of one wallet as reported by the staking subsystem
type StakePosition struct {
	WalletAddress string
	CdxStaked     decimal.Decimal
}
