package domain

import "errors"

var (
	// ErrInvalidAmount is returned when a monetary amount is zero, negative or finer than AmountScale
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidSource is returned when a deposit names an unknown revenue source
	ErrInvalidSource = errors.New("invalid revenue source")

	// ErrInvalidWallet is returned when a wallet address is not a hex address
	ErrInvalidWallet = errors.New("invalid wallet address")

	// ErrInvalidDateRange is returned when a date range does not start before it ends
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInsufficientBalance is returned when the vault balance is below the distribution threshold
	ErrInsufficientBalance = errors.New("insufficient vault balance")

	// ErrNoEligibleStakers is returned when no wallet has a positive stake
	ErrNoEligibleStakers = errors.New("no eligible stakers")

	// ErrNoShareForWallet is returned when a wallet has no share in the requested distribution
	ErrNoShareForWallet = errors.New("no share for wallet")

	// ErrAlreadyClaimed is returned when a wallet already claimed its reward for a distribution
	ErrAlreadyClaimed = errors.New("reward already claimed")

	// ErrDistributionNotFound is returned when a distribution does not exist
	ErrDistributionNotFound = errors.New("distribution not found")

	// ErrDistributionExpired is returned when claiming against an expired distribution
	ErrDistributionExpired = errors.New("distribution expired")

	// ErrDuplicateDeposit is returned when a deposit with the same source and tx reference already exists
	ErrDuplicateDeposit = errors.New("duplicate deposit")

	// ErrStakeLocked is returned when a stake position cannot be changed while locked
	ErrStakeLocked = errors.New("stake locked")

	// ErrStorageConflict is returned when a concurrent writer won the race; safe to retry
	ErrStorageConflict = errors.New("storage conflict")

	// ErrStorageUnavailable is returned on transient storage I/O failures
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsRetryable reports whether err signals a lost race or a transient storage failure.
// Logical errors are terminal: retrying them cannot change the outcome.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageConflict) || errors.Is(err, ErrStorageUnavailable)
}
