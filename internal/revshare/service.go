package revshare

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/adapter"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/eligibility"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/messaging"
	"github.com/feral-file/ff-revshare/internal/metrics"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

const (
	// DefaultMinBalance is the smallest vault balance a round is created from
	DefaultMinBalance = "1"
	// DefaultDistributionCron runs a round every Monday at midnight UTC
	DefaultDistributionCron = "0 0 * * 1"
)

// Config holds the revenue share policy
type Config struct {
	// MinBalance is the distribution threshold; rounds below it fail with ErrInsufficientBalance.
	// Nil uses DefaultMinBalance; zero only requires a positive balance.
	MinBalance *decimal.Decimal
	// RoundTTL is how long a round stays claimable
	RoundTTL time.Duration
	// ExpiryPolicy decides where the unclaimed balance of an expired round goes
	ExpiryPolicy domain.ExpiryPolicy
	// DistributionCron is the cadence rounds are created at, reported by VaultStats
	DistributionCron string
}

// Service is the revenue share engine: it accepts deposits, drains the vault into
// distribution rounds and records claims against them.
//
//go:generate mockgen -source=service.go -destination=../mocks/revshare_service.go -package=mocks -mock_names=Service=MockService
type Service interface {
	// Deposit records confirmed revenue and credits the vault
	Deposit(ctx context.Context, input DepositInput) (*schema.RevenueDeposit, error)
	// CreateDistribution drains the vault into a new round over every eligible stakeholder
	CreateDistribution(ctx context.Context) (*DistributionSummary, error)
	// Claim records the claim of a wallet and returns the claimed reward
	Claim(ctx context.Context, distributionID uuid.UUID, wallet string) (*schema.RewardClaim, error)
	// ExpireDistributions closes the claim window of up to limit rounds past their expiry
	ExpireDistributions(ctx context.Context, limit int) ([]schema.Distribution, error)

	// VaultStats returns the vault totals and the distribution cadence
	VaultStats(ctx context.Context) (*VaultStats, error)
	// PendingRewards lists the shares of a wallet across every round, newest first
	PendingRewards(ctx context.Context, wallet string) (*PendingRewards, error)
	// WalletShare projects the weighted share a wallet would hold in a round created now
	WalletShare(ctx context.Context, wallet string) (*WalletShare, error)
	// RevenueBreakdown aggregates deposits per source
	RevenueBreakdown(ctx context.Context, filter store.RevenueBreakdownFilter) ([]store.SourceTotal, error)
	// GetDistribution returns a round with its shares
	GetDistribution(ctx context.Context, id uuid.UUID) (*DistributionSummary, error)
	// ListDistributions returns the round history, newest first, with the total number of rounds
	ListDistributions(ctx context.Context, limit int, offset uint64) ([]schema.Distribution, uint64, error)
}

// DepositInput represents a revenue deposit as reported by a producer
type DepositInput struct {
	Amount      decimal.Decimal
	Source      string
	SourceID    *string
	Description *string
	TxReference *string
	Metadata    map[string]any
}

// DistributionSummary is a round together with every share allocated in it
type DistributionSummary struct {
	Distribution schema.Distribution
	Shares       []schema.UserShare
}

// VaultStats is a point-in-time view of the vault
type VaultStats struct {
	TotalBalance       decimal.Decimal
	TotalDeposited     decimal.Decimal
	TotalDistributed   decimal.Decimal
	LastDistributionAt *time.Time
	TotalRounds        int64
	MinBalance         decimal.Decimal
	ExpiryPolicy       domain.ExpiryPolicy
	DistributionCron   string
	// NextDistributionAt is nil when no cadence is configured
	NextDistributionAt *time.Time
}

// PendingRewards is the reward history of one wallet
type PendingRewards struct {
	WalletAddress string
	// TotalPending sums the unclaimed rewards of rounds still claimable
	TotalPending decimal.Decimal
	Rewards      []PendingReward
}

// WalletShare is the current eligibility of one wallet.
// Share is the zero value when the wallet has no stake.
type WalletShare struct {
	WalletAddress string
	Eligible      bool
	Share         domain.Share
}

// PendingReward is the share of a wallet in one round
type PendingReward struct {
	DistributionID  uuid.UUID
	RoundNumber     int64
	RewardAmount    decimal.Decimal
	SharePercentage decimal.Decimal
	DistributedAt   time.Time
	ExpiresAt       time.Time
	IsClaimed       bool
	IsExpired       bool
	ClaimedAt       *time.Time
}

type service struct {
	config     Config
	minBalance decimal.Decimal
	store      store.Store
	scanner    eligibility.Scanner
	publisher  messaging.Publisher
	clock      adapter.Clock
	schedule   cron.Schedule
}

// NewService creates a new revenue share service
func NewService(config Config, st store.Store, scanner eligibility.Scanner, publisher messaging.Publisher, clock adapter.Clock) (Service, error) {
	minBalance := decimal.RequireFromString(DefaultMinBalance)
	if config.MinBalance != nil {
		minBalance = *config.MinBalance
	}
	if minBalance.IsNegative() {
		return nil, fmt.Errorf("min balance must not be negative, got %s", minBalance.String())
	}
	if config.RoundTTL <= 0 {
		config.RoundTTL = domain.DefaultRoundTTL
	}
	if config.ExpiryPolicy == "" {
		config.ExpiryPolicy = domain.ExpiryPolicyRollover
	}
	if !config.ExpiryPolicy.Valid() {
		return nil, fmt.Errorf("unknown expiry policy %q", config.ExpiryPolicy)
	}
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	var schedule cron.Schedule
	if config.DistributionCron != "" {
		var err error
		schedule, err = cron.ParseStandard(config.DistributionCron)
		if err != nil {
			return nil, fmt.Errorf("invalid distribution cron %q: %w", config.DistributionCron, err)
		}
	}

	return &service{
		config:     config,
		minBalance: minBalance,
		store:      st,
		scanner:    scanner,
		publisher:  publisher,
		clock:      clock,
		schedule:   schedule,
	}, nil
}

// publish sends an event after the change it describes committed.
// The ledger is the source of truth, so a failed publish is only logged.
func (s *service) publish(ctx context.Context, eventType domain.EventType, data any) {
	event := domain.NewEvent(eventType, s.clock.Now(), data)
	if err := s.publisher.Publish(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(string(eventType), metrics.StatusError).Inc()
		logger.WarnCtx(ctx, "Failed to publish event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(eventType)),
			zap.Error(err))
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(string(eventType), metrics.StatusSuccess).Inc()
}
