package revshare_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/revshare"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

// persistAllocation mimics the store: it runs allocate on balance and builds the round from the result
func persistAllocation(t *testing.T, balance decimal.Decimal, allocation **domain.Allocation) func(context.Context, store.CreateDistributionInput, store.AllocateFunc) (*store.DistributionWithShares, error) {
	return func(ctx context.Context, input store.CreateDistributionInput, allocate store.AllocateFunc) (*store.DistributionWithShares, error) {
		alloc, err := allocate(ctx, balance)
		if err != nil {
			return nil, err
		}
		*allocation = alloc

		distribution := schema.Distribution{
			ID:              uuid.New(),
			RoundNumber:     1,
			TotalAmount:     alloc.TotalAmount,
			TotalCdxStaked:  alloc.TotalCdxStaked,
			TotalShares:     alloc.TotalShares,
			AmountPerShare:  alloc.AmountPerShare,
			EligibleWallets: len(alloc.Shares),
			UnclaimedAmount: alloc.TotalAmount,
			Status:          domain.DistributionStatusActive,
			DistributedAt:   input.Now,
			ExpiresAt:       input.Now.Add(input.TTL),
		}
		shares := make([]schema.UserShare, 0, len(alloc.Shares))
		for _, s := range alloc.Shares {
			shares = append(shares, schema.UserShare{
				ID:             uuid.New(),
				DistributionID: distribution.ID,
				WalletAddress:  s.WalletAddress,
				TotalShares:    s.TotalShares,
				RewardAmount:   s.RewardAmount,
			})
		}
		return &store.DistributionWithShares{Distribution: distribution, Shares: shares}, nil
	}
}

func vaultWithBalance(balance string) *schema.Vault {
	return &schema.Vault{ID: schema.VaultID, TotalBalance: dec(balance)}
}

func TestService_CreateDistribution_SimpleRound(t *testing.T) {
	tm := setupTestService(t, revshare.Config{RoundTTL: 48 * time.Hour})
	defer tearDownTestService(tm)

	ctx := context.Background()
	var allocation *domain.Allocation

	// the eligibility snapshot is taken before the vault is locked
	gomock.InOrder(
		tm.store.EXPECT().GetVault(ctx).Return(vaultWithBalance("1000"), nil),
		tm.scanner.EXPECT().Scan(ctx).Return(simpleRoundInputs(), nil),
		tm.store.EXPECT().
			CreateDistribution(ctx, store.CreateDistributionInput{Now: tm.now, TTL: 48 * time.Hour}, gomock.Any()).
			DoAndReturn(persistAllocation(t, dec("1000"), &allocation)),
	)
	tm.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeDistributionCreated, event.Type)
			data, ok := event.Data.(domain.DistributionCreatedData)
			require.True(t, ok)
			assert.Equal(t, int64(1), data.RoundNumber)
			assert.Equal(t, "1000", data.TotalAmount)
			assert.Equal(t, 2, data.EligibleWallets)
			assert.Equal(t, tm.now.Add(48*time.Hour), data.ExpiresAt)
			return nil
		})

	summary, err := tm.service.CreateDistribution(ctx)
	require.NoError(t, err)
	require.NotNil(t, allocation)

	assert.True(t, dec("1000").Equal(summary.Distribution.TotalAmount))
	assert.True(t, dec("302.5").Equal(summary.Distribution.TotalShares))
	require.Len(t, summary.Shares, 2)
	assert.Equal(t, walletA, summary.Shares[0].WalletAddress)
	assert.Equal(t, "330.58", summary.Shares[0].RewardAmount.StringFixed(2))
	assert.Equal(t, "669.42", summary.Shares[1].RewardAmount.StringFixed(2))
	assert.True(t, dec("1000").Equal(summary.Shares[0].RewardAmount.Add(summary.Shares[1].RewardAmount)))
}

func TestService_CreateDistribution_AllocatesLockedBalance(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	var allocation *domain.Allocation
	// a deposit landed between the vault read and the lock
	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("1000"), nil)
	tm.scanner.EXPECT().Scan(gomock.Any()).Return(simpleRoundInputs(), nil)
	tm.store.EXPECT().
		CreateDistribution(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(persistAllocation(t, dec("1250"), &allocation))
	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := tm.service.CreateDistribution(context.Background())
	require.NoError(t, err)
	assert.True(t, dec("1250").Equal(allocation.TotalAmount))
	assert.True(t, dec("1250").Equal(summary.Distribution.TotalAmount))
}

func TestService_CreateDistribution_BelowThreshold(t *testing.T) {
	tm := setupTestService(t, revshare.Config{MinBalance: decPtr("100")})
	defer tearDownTestService(tm)

	// neither the scanner nor the round transaction run when the balance is too low
	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("99.999999"), nil)

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrInsufficientBalance), "got %v", err)
}

func TestService_CreateDistribution_DrainedVault(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("0"), nil)

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrInsufficientBalance))
}

func TestService_CreateDistribution_DrainedByConcurrentRound(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	var allocation *domain.Allocation
	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("1000"), nil)
	tm.scanner.EXPECT().Scan(gomock.Any()).Return(simpleRoundInputs(), nil)
	tm.store.EXPECT().
		CreateDistribution(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(persistAllocation(t, decimal.Zero, &allocation))

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrInsufficientBalance))
	assert.Nil(t, allocation)
}

func TestService_CreateDistribution_ZeroThreshold(t *testing.T) {
	tm := setupTestService(t, revshare.Config{MinBalance: decPtr("0")})
	defer tearDownTestService(tm)

	var allocation *domain.Allocation
	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("0.5"), nil)
	tm.scanner.EXPECT().Scan(gomock.Any()).Return(simpleRoundInputs(), nil)
	tm.store.EXPECT().
		CreateDistribution(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(persistAllocation(t, dec("0.5"), &allocation))
	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := tm.service.CreateDistribution(context.Background())
	require.NoError(t, err)
	assert.True(t, dec("0.5").Equal(summary.Distribution.TotalAmount))
}

func TestService_CreateDistribution_NoEligibleStakers(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("1000"), nil)
	tm.scanner.EXPECT().Scan(gomock.Any()).Return([]domain.ShareInput{}, nil)

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrNoEligibleStakers))
}

func TestService_CreateDistribution_ScanFailure(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("1000"), nil)
	tm.scanner.EXPECT().Scan(gomock.Any()).Return(nil, domain.ErrStorageUnavailable)

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
	assert.True(t, domain.IsRetryable(err))
}

func TestService_CreateDistribution_VaultReadFailure(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	tm.store.EXPECT().GetVault(gomock.Any()).Return(nil, domain.ErrStorageUnavailable)

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
}

func TestService_CreateDistribution_Conflict(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	tm.store.EXPECT().GetVault(gomock.Any()).Return(vaultWithBalance("1000"), nil)
	tm.scanner.EXPECT().Scan(gomock.Any()).Return(simpleRoundInputs(), nil)
	tm.store.EXPECT().
		CreateDistribution(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrStorageConflict)

	_, err := tm.service.CreateDistribution(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStorageConflict))
}

func TestService_GetDistribution(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		tm := setupTestService(t, revshare.Config{})
		defer tearDownTestService(tm)

		id := uuid.New()
		shares := []schema.UserShare{{DistributionID: id, WalletAddress: walletA}}
		tm.store.EXPECT().GetDistribution(gomock.Any(), id).Return(&schema.Distribution{ID: id, RoundNumber: 3}, nil)
		tm.store.EXPECT().GetUserShares(gomock.Any(), id).Return(shares, nil)

		summary, err := tm.service.GetDistribution(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.Distribution.RoundNumber)
		assert.Equal(t, shares, summary.Shares)
	})

	t.Run("not found", func(t *testing.T) {
		tm := setupTestService(t, revshare.Config{})
		defer tearDownTestService(tm)

		tm.store.EXPECT().GetDistribution(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := tm.service.GetDistribution(context.Background(), uuid.New())
		assert.True(t, errors.Is(err, domain.ErrDistributionNotFound))
	})
}

func TestService_ListDistributions(t *testing.T) {
	tm := setupTestService(t, revshare.Config{})
	defer tearDownTestService(tm)

	rounds := []schema.Distribution{{RoundNumber: 2}, {RoundNumber: 1}}
	tm.store.EXPECT().ListDistributions(gomock.Any(), 20, uint64(0)).Return(rounds, uint64(2), nil)

	got, total, err := tm.service.ListDistributions(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Equal(t, rounds, got)

	_, _, err = tm.service.ListDistributions(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestService_ExpireDistributions(t *testing.T) {
	tm := setupTestService(t, revshare.Config{ExpiryPolicy: domain.ExpiryPolicyRollover})
	defer tearDownTestService(tm)

	first := schema.Distribution{ID: uuid.New(), RoundNumber: 1}
	second := schema.Distribution{ID: uuid.New(), RoundNumber: 2}

	tm.store.EXPECT().GetExpiredDistributions(gomock.Any(), tm.now, 10).Return([]schema.Distribution{first, second}, nil)
	tm.store.EXPECT().
		ExpireDistribution(gomock.Any(), store.ExpireDistributionInput{ID: first.ID, Now: tm.now, Policy: domain.ExpiryPolicyRollover}).
		Return(&schema.Distribution{ID: first.ID, RoundNumber: 1, Status: domain.DistributionStatusExpired, ReclaimedAmount: dec("12.5")}, nil)
	// the second round was fully claimed meanwhile
	tm.store.EXPECT().
		ExpireDistribution(gomock.Any(), store.ExpireDistributionInput{ID: second.ID, Now: tm.now, Policy: domain.ExpiryPolicyRollover}).
		Return(nil, nil)
	tm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			data, ok := event.Data.(domain.DistributionExpiredData)
			require.True(t, ok)
			assert.Equal(t, "12.5", data.ReclaimedAmount)
			assert.Equal(t, domain.ExpiryPolicyRollover, data.Policy)
			return nil
		})

	expired, err := tm.service.ExpireDistributions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, first.ID, expired[0].ID)
}

func TestService_ExpireDistributions_StopsOnFailure(t *testing.T) {
	tm := setupTestService(t, revshare.Config{ExpiryPolicy: domain.ExpiryPolicyForfeit})
	defer tearDownTestService(tm)

	first := schema.Distribution{ID: uuid.New(), RoundNumber: 1}
	second := schema.Distribution{ID: uuid.New(), RoundNumber: 2}

	tm.store.EXPECT().GetExpiredDistributions(gomock.Any(), tm.now, 10).Return([]schema.Distribution{first, second}, nil)
	tm.store.EXPECT().ExpireDistribution(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorageConflict)

	expired, err := tm.service.ExpireDistributions(context.Background(), 10)
	assert.True(t, errors.Is(err, domain.ErrStorageConflict))
	assert.Empty(t, expired)
}
