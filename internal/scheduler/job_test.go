package scheduler_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/mocks"
	"github.com/feral-file/ff-revshare/internal/revshare"
	"github.com/feral-file/ff-revshare/internal/scheduler"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func newJob(service *mocks.MockService) *scheduler.DistributionJob {
	return scheduler.NewDistributionJob(scheduler.DistributionJobConfig{
		Cron:               "0 0 * * 1",
		MaxConflictRetries: 3,
		RetryInterval:      time.Millisecond,
	}, service)
}

func summary(round int64) *revshare.DistributionSummary {
	return &revshare.DistributionSummary{
		Distribution: schema.Distribution{RoundNumber: round, TotalAmount: decimal.NewFromInt(1000), EligibleWallets: 2},
	}
}

func TestDistributionJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	service.EXPECT().CreateDistribution(gomock.Any()).Return(summary(1), nil)

	assert.NoError(t, newJob(service).Run(context.Background()))
}

func TestDistributionJob_SkipsNormalOutcomes(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "insufficient balance", err: domain.ErrInsufficientBalance},
		{name: "no eligible stakers", err: domain.ErrNoEligibleStakers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)
			service.EXPECT().CreateDistribution(gomock.Any()).Return(nil, tt.err).Times(1)

			assert.NoError(t, newJob(service).Run(context.Background()))
		})
	}
}

func TestDistributionJob_RetriesConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	gomock.InOrder(
		service.EXPECT().CreateDistribution(gomock.Any()).Return(nil, domain.ErrStorageConflict),
		service.EXPECT().CreateDistribution(gomock.Any()).Return(nil, domain.ErrStorageConflict),
		service.EXPECT().CreateDistribution(gomock.Any()).Return(summary(2), nil),
	)

	assert.NoError(t, newJob(service).Run(context.Background()))
}

func TestDistributionJob_GivesUpAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	// first attempt plus three retries
	service.EXPECT().CreateDistribution(gomock.Any()).Return(nil, domain.ErrStorageConflict).Times(4)

	err := newJob(service).Run(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStorageConflict))
}

func TestDistributionJob_DoesNotRetryUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	service.EXPECT().CreateDistribution(gomock.Any()).Return(nil, domain.ErrStorageUnavailable).Times(1)

	err := newJob(service).Run(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
}

func TestManager_RegisterAndRunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	service.EXPECT().CreateDistribution(gomock.Any()).Return(summary(1), nil)

	manager, err := scheduler.NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Register(newJob(service)))

	require.NoError(t, manager.RunNow(context.Background()))

	manager.Start(context.Background())
	require.NoError(t, manager.Stop())
}

func TestManager_RejectsInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, err := scheduler.NewManager()
	require.NoError(t, err)

	job := scheduler.NewDistributionJob(scheduler.DistributionJobConfig{Cron: "not a cron"}, mocks.NewMockService(ctrl))
	assert.Error(t, manager.Register(job))
}
