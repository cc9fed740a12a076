package eligibility_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/eligibility"
	mockspkg "github.com/feral-file/ff-revshare/internal/mocks"
)

const (
	walletA = "0x1111111111111111111111111111111111111111"
	walletB = "0x2222222222222222222222222222222222222222"
	walletC = "0x3333333333333333333333333333333333333333"
)

type testScannerMocks struct {
	ctrl         *gomock.Controller
	stakes       *mockspkg.MockStakeSource
	collectibles *mockspkg.MockCollectibleSource
	relics       *mockspkg.MockRelicSource
	scanner      eligibility.Scanner
}

func setupTestScanner(t *testing.T) *testScannerMocks {
	ctrl := gomock.NewController(t)

	tm := &testScannerMocks{
		ctrl:         ctrl,
		stakes:       mockspkg.NewMockStakeSource(ctrl),
		collectibles: mockspkg.NewMockCollectibleSource(ctrl),
		relics:       mockspkg.NewMockRelicSource(ctrl),
	}
	tm.scanner = eligibility.NewScanner(eligibility.Config{WorkerPoolSize: 2}, tm.stakes, tm.collectibles, tm.relics)

	return tm
}

func TestScanner_Scan(t *testing.T) {
	mocks := setupTestScanner(t)
	ctx := context.Background()

	mocks.stakes.EXPECT().ListStakers(gomock.Any()).Return([]domain.StakePosition{
		{WalletAddress: walletC, CdxStaked: decimal.NewFromInt(300)},
		{WalletAddress: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", CdxStaked: decimal.Zero},
		{WalletAddress: "0x1111111111111111111111111111111111111111", CdxStaked: decimal.RequireFromString("100.5")},
		{WalletAddress: walletB, CdxStaked: decimal.NewFromInt(200)},
	}, nil)

	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletA).Return(0, nil)
	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletB).Return(3, nil)
	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletC).Return(12, nil)
	mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletA).Return(1, nil)
	mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletB).Return(0, nil)
	mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletC).Return(2, nil)

	inputs, err := mocks.scanner.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, inputs, 3)

	assert.Equal(t, walletA, inputs[0].WalletAddress)
	assert.True(t, decimal.RequireFromString("100.5").Equal(inputs[0].CdxStaked))
	assert.Equal(t, 0, inputs[0].NFTCount)
	assert.Equal(t, 1, inputs[0].RelicCount)

	assert.Equal(t, walletB, inputs[1].WalletAddress)
	assert.Equal(t, 3, inputs[1].NFTCount)

	assert.Equal(t, walletC, inputs[2].WalletAddress)
	assert.Equal(t, 12, inputs[2].NFTCount)
	assert.Equal(t, 2, inputs[2].RelicCount)
}

func TestScanner_Scan_LowerCasesWallets(t *testing.T) {
	mocks := setupTestScanner(t)

	mocks.stakes.EXPECT().ListStakers(gomock.Any()).Return([]domain.StakePosition{
		{WalletAddress: "0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD", CdxStaked: decimal.NewFromInt(1)},
	}, nil)

	lower := "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), lower).Return(1, nil)
	mocks.relics.EXPECT().EquippedCount(gomock.Any(), lower).Return(1, nil)

	inputs, err := mocks.scanner.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, lower, inputs[0].WalletAddress)
}

func TestScanner_Scan_NormalizesWallets(t *testing.T) {
	mocks := setupTestScanner(t)

	mocks.stakes.EXPECT().ListStakers(gomock.Any()).Return([]domain.StakePosition{
		{WalletAddress: "2222222222222222222222222222222222222222", CdxStaked: decimal.NewFromInt(5)},
		{WalletAddress: "not-a-wallet", CdxStaked: decimal.NewFromInt(1000)},
		{WalletAddress: walletA, CdxStaked: decimal.NewFromInt(7)},
		{WalletAddress: "1111111111111111111111111111111111111111", CdxStaked: decimal.NewFromInt(3)},
	}, nil)

	// boost lookups use the same key claims are recorded under
	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletA).Return(0, nil)
	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletB).Return(0, nil)
	mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletA).Return(0, nil)
	mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletB).Return(0, nil)

	inputs, err := mocks.scanner.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, walletA, inputs[0].WalletAddress)
	assert.True(t, decimal.NewFromInt(10).Equal(inputs[0].CdxStaked), "got %s", inputs[0].CdxStaked)
	assert.Equal(t, walletB, inputs[1].WalletAddress)
	assert.True(t, decimal.NewFromInt(5).Equal(inputs[1].CdxStaked))

	for _, input := range inputs {
		normalized, err := domain.NormalizeWallet(input.WalletAddress)
		require.NoError(t, err)
		assert.Equal(t, normalized, input.WalletAddress)
	}
}

func TestScanner_Scan_NoStakers(t *testing.T) {
	mocks := setupTestScanner(t)

	mocks.stakes.EXPECT().ListStakers(gomock.Any()).Return([]domain.StakePosition{
		{WalletAddress: walletA, CdxStaked: decimal.Zero},
	}, nil)

	inputs, err := mocks.scanner.Scan(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, inputs)
	assert.Empty(t, inputs)
}

func TestScanner_Scan_StakeSourceError(t *testing.T) {
	mocks := setupTestScanner(t)

	mocks.stakes.EXPECT().ListStakers(gomock.Any()).Return(nil, assert.AnError)

	inputs, err := mocks.scanner.Scan(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list stakers")
	assert.Nil(t, inputs)
}

func TestScanner_Scan_BoostSourceError(t *testing.T) {
	mocks := setupTestScanner(t)

	mocks.stakes.EXPECT().ListStakers(gomock.Any()).Return([]domain.StakePosition{
		{WalletAddress: walletA, CdxStaked: decimal.NewFromInt(10)},
	}, nil)
	mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletA).Return(0, assert.AnError)

	inputs, err := mocks.scanner.Scan(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, inputs)
}

func TestScanner_ScanWallet(t *testing.T) {
	t.Run("staked wallet", func(t *testing.T) {
		mocks := setupTestScanner(t)

		mocks.stakes.EXPECT().StakedBalance(gomock.Any(), walletB).Return(decimal.NewFromInt(50), nil)
		mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletB).Return(4, nil)
		mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletB).Return(1, nil)

		input, err := mocks.scanner.ScanWallet(context.Background(), walletB)
		require.NoError(t, err)
		require.NotNil(t, input)
		assert.Equal(t, walletB, input.WalletAddress)
		assert.True(t, decimal.NewFromInt(50).Equal(input.CdxStaked))
		assert.Equal(t, 4, input.NFTCount)
		assert.Equal(t, 1, input.RelicCount)
	})

	t.Run("wallet without stake", func(t *testing.T) {
		mocks := setupTestScanner(t)

		mocks.stakes.EXPECT().StakedBalance(gomock.Any(), walletB).Return(decimal.Zero, nil)

		input, err := mocks.scanner.ScanWallet(context.Background(), walletB)
		require.NoError(t, err)
		assert.Nil(t, input)
	})

	t.Run("wallet without prefix", func(t *testing.T) {
		mocks := setupTestScanner(t)

		mocks.stakes.EXPECT().StakedBalance(gomock.Any(), walletC).Return(decimal.NewFromInt(1), nil)
		mocks.collectibles.EXPECT().OwnedCount(gomock.Any(), walletC).Return(0, nil)
		mocks.relics.EXPECT().EquippedCount(gomock.Any(), walletC).Return(0, nil)

		input, err := mocks.scanner.ScanWallet(context.Background(), "3333333333333333333333333333333333333333")
		require.NoError(t, err)
		require.NotNil(t, input)
		assert.Equal(t, walletC, input.WalletAddress)
	})

	t.Run("invalid wallet", func(t *testing.T) {
		mocks := setupTestScanner(t)

		input, err := mocks.scanner.ScanWallet(context.Background(), "0x1234")
		assert.ErrorIs(t, err, domain.ErrInvalidWallet)
		assert.Nil(t, input)
	})

	t.Run("stake source error", func(t *testing.T) {
		mocks := setupTestScanner(t)

		mocks.stakes.EXPECT().StakedBalance(gomock.Any(), walletB).Return(decimal.Zero, assert.AnError)

		input, err := mocks.scanner.ScanWallet(context.Background(), walletB)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, input)
	})
}
