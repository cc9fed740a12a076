package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/revshare"
)

const defaultMaxConflictRetries = 5

// Job is a unit of work registered on the scheduler
type Job interface {
	// Name identifies the job in logs and in the scheduler
	Name() string
	// Definition returns when the job runs
	Definition() gocron.JobDefinition
	// Run executes the job once
	Run(ctx context.Context) error
}

// DistributionJobConfig holds configuration for the distribution job
type DistributionJobConfig struct {
	// Cron is a standard five field cron expression evaluated in UTC
	Cron string
	// MaxConflictRetries bounds the retries of a round that lost a race
	MaxConflictRetries uint64
	// RetryInterval is the initial backoff between retries
	RetryInterval time.Duration
}

// DistributionJob drains the vault into a new round on every tick
type DistributionJob struct {
	config  DistributionJobConfig
	service revshare.Service
}

// NewDistributionJob creates a new distribution job
func NewDistributionJob(config DistributionJobConfig, service revshare.Service) *DistributionJob {
	if config.MaxConflictRetries == 0 {
		config.MaxConflictRetries = defaultMaxConflictRetries
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = time.Second
	}
	return &DistributionJob{config: config, service: service}
}

// Name returns the job name
func (j *DistributionJob) Name() string {
	return "distribution-round"
}

// Definition returns the cron schedule of the job
func (j *DistributionJob) Definition() gocron.JobDefinition {
	return gocron.CronJob(j.config.Cron, false)
}

// Run creates one distribution round.
//
// Only ErrStorageConflict is retried: the losing transaction rolled back, so retrying cannot
// duplicate a round. ErrStorageUnavailable may hide a committed round and is left to the next tick.
// An empty or below-threshold vault and a round without stakers are normal outcomes, not failures.
func (j *DistributionJob) Run(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = j.config.RetryInterval
	b.RandomizationFactor = 0.5

	var summary *revshare.DistributionSummary
	operation := func() error {
		var err error
		summary, err = j.service.CreateDistribution(ctx)
		if err != nil && !errors.Is(err, domain.ErrStorageConflict) {
			return backoff.Permanent(err)
		}
		return err
	}

	notifyOnError := func(err error, duration time.Duration) {
		logger.WarnCtx(ctx, "Distribution round lost a race, retrying",
			zap.Error(err),
			zap.Duration("next_retry_in", duration),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, j.config.MaxConflictRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notifyOnError); err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrNoEligibleStakers) {
			logger.InfoCtx(ctx, "Skipping distribution round", zap.String("reason", err.Error()))
			return nil
		}
		return err
	}

	logger.InfoCtx(ctx, "Scheduled distribution round completed",
		zap.Int64("roundNumber", summary.Distribution.RoundNumber),
		zap.String("totalAmount", summary.Distribution.TotalAmount.String()),
		zap.Int("eligibleWallets", summary.Distribution.EligibleWallets),
	)
	return nil
}
