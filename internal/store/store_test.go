package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

const (
	walletA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	walletB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	walletC = "0xcccccccccccccccccccccccccccccccccccccccc"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// checksumLike upper-cases the hex digits of a wallet, as checksummed addresses mix cases
func checksumLike(wallet string) string {
	return "0x" + strings.ToUpper(wallet[2:])
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func stringPtr(s string) *string {
	return &s
}

func buildTestDeposit(amount string, source domain.RevenueSource, txRef *string) CreateDepositInput {
	return CreateDepositInput{
		Amount:      dec(amount),
		Source:      source,
		SourceID:    stringPtr("order-1"),
		Description: stringPtr("test deposit"),
		TxReference: txRef,
		Metadata:    datatypes.JSON(`{"channel":"test"}`),
		CreatedAt:   time.Now().UTC(),
	}
}

func seedStake(t *testing.T, s Store, wallet string, amount string) {
	db := s.(*pgStore).db
	require.NoError(t, db.Create(&schema.StakePosition{
		WalletAddress: wallet,
		CdxStaked:     dec(amount),
	}).Error)
}

func seedCollectibles(t *testing.T, s Store, wallet string, count int) {
	db := s.(*pgStore).db
	for range count {
		require.NoError(t, db.Create(&schema.NFTOwnership{
			TokenID:       uuid.NewString(),
			WalletAddress: wallet,
		}).Error)
	}
}

func seedRelics(t *testing.T, s Store, wallet string, equipped, unequipped int) {
	db := s.(*pgStore).db
	for i := range equipped + unequipped {
		require.NoError(t, db.Create(&schema.RelicInventory{
			RelicID:       uuid.NewString(),
			WalletAddress: wallet,
			IsEquipped:    i < equipped,
		}).Error)
	}
}

// seedSimpleRound stakes 100 for A without boosts and 100 for B with 5 collectibles and 2 equipped relics
func seedSimpleRound(t *testing.T, s Store) {
	seedStake(t, s, walletA, "100")
	seedStake(t, s, checksumLike(walletB), "100")
	seedCollectibles(t, s, walletB, 5)
	seedRelics(t, s, checksumLike(walletB), 2, 1)
}

// scanStore builds share inputs from the eligibility tables the store exposes
func scanStore(ctx context.Context, s Store) ([]domain.ShareInput, error) {
	stakers, err := s.ListStakers(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]domain.ShareInput, 0, len(stakers))
	for _, staker := range stakers {
		nfts, err := s.OwnedCount(ctx, staker.WalletAddress)
		if err != nil {
			return nil, err
		}
		relics, err := s.EquippedCount(ctx, staker.WalletAddress)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, domain.ShareInput{
			WalletAddress: staker.WalletAddress,
			CdxStaked:     staker.CdxStaked,
			NFTCount:      nfts,
			RelicCount:    relics,
		})
	}

	return inputs, nil
}

// allocateFromStore snapshots the eligibility tables before the round transaction starts
// and splits the locked balance over that snapshot
func allocateFromStore(s Store) AllocateFunc {
	inputs, scanErr := scanStore(context.Background(), s)
	return func(ctx context.Context, balance decimal.Decimal) (*domain.Allocation, error) {
		if scanErr != nil {
			return nil, scanErr
		}
		if !balance.IsPositive() {
			return nil, domain.ErrInsufficientBalance
		}

		return domain.Allocate(balance, inputs)
	}
}

func failingAllocate(err error) AllocateFunc {
	return func(ctx context.Context, balance decimal.Decimal) (*domain.Allocation, error) {
		return nil, err
	}
}

func assertVaultConserved(t *testing.T, vault *schema.Vault) {
	t.Helper()
	assert.True(t, vault.TotalDeposited.Equal(vault.TotalDistributed.Add(vault.TotalBalance)),
		"deposited %s != distributed %s + balance %s",
		vault.TotalDeposited, vault.TotalDistributed, vault.TotalBalance)
}

func createRound(t *testing.T, s Store, amount string, now time.Time) *DistributionWithShares {
	ctx := context.Background()
	_, err := s.CreateDeposit(ctx, buildTestDeposit(amount, domain.RevenueSourceMarketplace, nil))
	require.NoError(t, err)

	round, err := s.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, allocateFromStore(s))
	require.NoError(t, err)
	return round
}

// =============================================================================
// Test: Vault & Deposits
// =============================================================================

func testVaultInitialized(t *testing.T, store Store) {
	vault, err := store.GetVault(context.Background())
	require.NoError(t, err)
	require.NotNil(t, vault)

	assert.Equal(t, int16(schema.VaultID), vault.ID)
	assert.True(t, vault.TotalBalance.IsZero())
	assert.True(t, vault.TotalDeposited.IsZero())
	assert.True(t, vault.TotalDistributed.IsZero())
	assert.Nil(t, vault.LastDistributionAt)
}

func testCreateDeposit(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("deposit credits the vault", func(t *testing.T) {
		before, err := store.GetVault(ctx)
		require.NoError(t, err)

		deposit, err := store.CreateDeposit(ctx, buildTestDeposit("500", domain.RevenueSourceMarketplace, stringPtr("0xtx1")))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, deposit.ID)
		assert.Equal(t, domain.DepositStatusConfirmed, deposit.Status)
		assert.True(t, dec("500").Equal(deposit.Amount))

		after, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, before.TotalBalance.Add(dec("500")).Equal(after.TotalBalance))
		assert.True(t, before.TotalDeposited.Add(dec("500")).Equal(after.TotalDeposited))
		assert.Equal(t, before.Version+1, after.Version)
		assertVaultConserved(t, after)
	})

	t.Run("duplicate tx reference for the same source is rejected", func(t *testing.T) {
		before, err := store.GetVault(ctx)
		require.NoError(t, err)

		_, err = store.CreateDeposit(ctx, buildTestDeposit("10", domain.RevenueSourceMarketplace, stringPtr("0xtx1")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateDeposit))
		assert.False(t, domain.IsRetryable(err))

		after, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, before.TotalBalance.Equal(after.TotalBalance))
		assert.Equal(t, before.Version, after.Version)
	})

	t.Run("same tx reference from another source is accepted", func(t *testing.T) {
		_, err := store.CreateDeposit(ctx, buildTestDeposit("10", domain.RevenueSourceLaunchpad, stringPtr("0xtx1")))
		require.NoError(t, err)
	})

	t.Run("deposits without tx reference never collide", func(t *testing.T) {
		_, err := store.CreateDeposit(ctx, buildTestDeposit("1", domain.RevenueSourceEcommerce, nil))
		require.NoError(t, err)
		_, err = store.CreateDeposit(ctx, buildTestDeposit("1", domain.RevenueSourceEcommerce, nil))
		require.NoError(t, err)

		vault, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, dec("512").Equal(vault.TotalBalance), "got %s", vault.TotalBalance)
	})
}

func testRevenueBreakdown(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	deposits := []struct {
		amount string
		source domain.RevenueSource
		at     time.Time
	}{
		{"100", domain.RevenueSourceMarketplace, base},
		{"50.5", domain.RevenueSourceMarketplace, base.Add(24 * time.Hour)},
		{"20", domain.RevenueSourceTradingBot, base.Add(48 * time.Hour)},
		{"7.25", domain.RevenueSourceSubscription, base.Add(72 * time.Hour)},
	}
	for _, d := range deposits {
		input := buildTestDeposit(d.amount, d.source, nil)
		input.CreatedAt = d.at
		_, err := store.CreateDeposit(ctx, input)
		require.NoError(t, err)
	}

	t.Run("all sources ordered by source", func(t *testing.T) {
		totals, err := store.GetRevenueBreakdown(ctx, RevenueBreakdownFilter{})
		require.NoError(t, err)
		require.Len(t, totals, 3)

		assert.Equal(t, domain.RevenueSourceMarketplace, totals[0].Source)
		assert.True(t, dec("150.5").Equal(totals[0].Total))
		assert.Equal(t, int64(2), totals[0].Count)
		assert.Equal(t, domain.RevenueSourceSubscription, totals[1].Source)
		assert.Equal(t, domain.RevenueSourceTradingBot, totals[2].Source)
	})

	t.Run("source filter", func(t *testing.T) {
		totals, err := store.GetRevenueBreakdown(ctx, RevenueBreakdownFilter{
			Sources: []domain.RevenueSource{domain.RevenueSourceTradingBot},
		})
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assert.True(t, dec("20").Equal(totals[0].Total))
	})

	t.Run("time window is half open", func(t *testing.T) {
		from := base.Add(24 * time.Hour)
		to := base.Add(72 * time.Hour)
		totals, err := store.GetRevenueBreakdown(ctx, RevenueBreakdownFilter{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, totals, 2)
		assert.True(t, dec("50.5").Equal(totals[0].Total))
		assert.True(t, dec("20").Equal(totals[1].Total))
	})

	t.Run("no deposits in range", func(t *testing.T) {
		from := base.Add(365 * 24 * time.Hour)
		totals, err := store.GetRevenueBreakdown(ctx, RevenueBreakdownFilter{From: &from})
		require.NoError(t, err)
		assert.Empty(t, totals)
	})
}

// =============================================================================
// Test: Eligibility sources
// =============================================================================

func testEligibilitySources(t *testing.T, store Store) {
	ctx := context.Background()

	seedSimpleRound(t, store)
	seedStake(t, store, walletC, "0")

	t.Run("list stakers skips zero stakes and lower-cases wallets", func(t *testing.T) {
		stakers, err := store.ListStakers(ctx)
		require.NoError(t, err)
		require.Len(t, stakers, 2)
		assert.Equal(t, walletA, stakers[0].WalletAddress)
		assert.Equal(t, walletB, stakers[1].WalletAddress)
		assert.True(t, dec("100").Equal(stakers[1].CdxStaked))
	})

	t.Run("staked balance", func(t *testing.T) {
		balance, err := store.StakedBalance(ctx, checksumLike(walletB))
		require.NoError(t, err)
		assert.True(t, dec("100").Equal(balance))

		balance, err = store.StakedBalance(ctx, "0x0000000000000000000000000000000000000001")
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("collectible count is case-insensitive", func(t *testing.T) {
		count, err := store.OwnedCount(ctx, checksumLike(walletB))
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		count, err = store.OwnedCount(ctx, walletA)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("only equipped relics count", func(t *testing.T) {
		count, err := store.EquippedCount(ctx, walletB)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func testEligibilityWalletKeys(t *testing.T, store Store) {
	ctx := context.Background()
	bare := strings.TrimPrefix(walletC, "0x")

	seedStake(t, store, bare, "40")
	seedStake(t, store, checksumLike(walletC), "60")
	seedCollectibles(t, store, bare, 1)
	seedRelics(t, store, strings.ToUpper(bare), 1, 0)

	stakers, err := store.ListStakers(ctx)
	require.NoError(t, err)
	require.Len(t, stakers, 1)
	assert.Equal(t, walletC, stakers[0].WalletAddress)
	assert.True(t, dec("100").Equal(stakers[0].CdxStaked))

	balance, err := store.StakedBalance(ctx, bare)
	require.NoError(t, err)
	assert.True(t, dec("100").Equal(balance))

	count, err := store.OwnedCount(ctx, walletC)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.EquippedCount(ctx, walletC)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// the share is recorded under the key a claim looks up
	round := createRound(t, store, "10", time.Now().UTC())
	require.Len(t, round.Shares, 1)
	assert.Equal(t, walletC, round.Shares[0].WalletAddress)

	claim, err := store.CreateClaim(ctx, CreateClaimInput{
		DistributionID: round.Distribution.ID,
		WalletAddress:  checksumLike(walletC),
		ClaimedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.True(t, dec("10").Equal(claim.ClaimAmount))
}

// =============================================================================
// Test: Distribution rounds
// =============================================================================

func testCreateDistribution(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	seedSimpleRound(t, store)
	_, err := store.CreateDeposit(ctx, buildTestDeposit("1000", domain.RevenueSourceMarketplace, nil))
	require.NoError(t, err)

	round, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, allocateFromStore(store))
	require.NoError(t, err)

	t.Run("round snapshot", func(t *testing.T) {
		d := round.Distribution
		assert.Equal(t, int64(1), d.RoundNumber)
		assert.Equal(t, domain.DistributionStatusActive, d.Status)
		assert.True(t, dec("1000").Equal(d.TotalAmount))
		assert.True(t, dec("200").Equal(d.TotalCdxStaked))
		assert.True(t, dec("302.5").Equal(d.TotalShares))
		assert.Equal(t, 2, d.EligibleWallets)
		assert.True(t, d.UnclaimedAmount.Equal(d.TotalAmount))
		assert.True(t, now.Add(domain.DefaultRoundTTL).Equal(d.ExpiresAt))
	})

	t.Run("persisted shares", func(t *testing.T) {
		shares, err := store.GetUserShares(ctx, round.Distribution.ID)
		require.NoError(t, err)
		require.Len(t, shares, 2)

		assert.Equal(t, walletA, shares[0].WalletAddress)
		assert.True(t, dec("330.578512").Equal(shares[0].RewardAmount), "got %s", shares[0].RewardAmount)
		assert.Equal(t, walletB, shares[1].WalletAddress)
		assert.True(t, dec("669.421488").Equal(shares[1].RewardAmount), "got %s", shares[1].RewardAmount)
		assert.True(t, dec("1.5").Equal(shares[1].NFTBoostMultiplier))
		assert.True(t, dec("1.35").Equal(shares[1].RelicBoostMultiplier))
		assert.Equal(t, 5, shares[1].NFTCount)
		assert.Equal(t, 2, shares[1].RelicCount)

		total := shares[0].RewardAmount.Add(shares[1].RewardAmount)
		assert.True(t, dec("1000").Equal(total))
	})

	t.Run("vault drained", func(t *testing.T) {
		vault, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, vault.TotalBalance.IsZero())
		assert.True(t, dec("1000").Equal(vault.TotalDistributed))
		require.NotNil(t, vault.LastDistributionAt)
		assert.True(t, now.Equal(*vault.LastDistributionAt))
		assertVaultConserved(t, vault)
	})

	t.Run("second round on an empty vault fails without changes", func(t *testing.T) {
		_, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, allocateFromStore(store))
		assert.True(t, errors.Is(err, domain.ErrInsufficientBalance))

		count, err := store.CountDistributions(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("allocation failure rolls back", func(t *testing.T) {
		_, err := store.CreateDeposit(ctx, buildTestDeposit("50", domain.RevenueSourceFlashSale, nil))
		require.NoError(t, err)

		_, err = store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL},
			failingAllocate(domain.ErrNoEligibleStakers))
		assert.True(t, errors.Is(err, domain.ErrNoEligibleStakers))

		vault, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, dec("50").Equal(vault.TotalBalance))

		count, err := store.CountDistributions(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("allocation must match the vault balance", func(t *testing.T) {
		short := func(ctx context.Context, balance decimal.Decimal) (*domain.Allocation, error) {
			return domain.Allocate(balance.Sub(dec("1")), []domain.ShareInput{{WalletAddress: walletA, CdxStaked: dec("1")}})
		}
		_, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, short)
		require.Error(t, err)

		vault, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, dec("50").Equal(vault.TotalBalance))
	})

	t.Run("round numbers increase", func(t *testing.T) {
		next, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: now.Add(time.Hour), TTL: domain.DefaultRoundTTL}, allocateFromStore(store))
		require.NoError(t, err)
		assert.Equal(t, int64(2), next.Distribution.RoundNumber)
	})
}

func testShareValuesRoundTrip(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// stake scale 18 times both boosts gives a weighted share of scale 22
	seedStake(t, store, walletA, "0.123456789012345678")
	seedCollectibles(t, store, walletA, 5)
	seedRelics(t, store, walletA, 2, 0)
	seedStake(t, store, walletB, "1")

	_, err := store.CreateDeposit(ctx, buildTestDeposit("10", domain.RevenueSourceLaunchpad, nil))
	require.NoError(t, err)

	round, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, allocateFromStore(store))
	require.NoError(t, err)
	require.Len(t, round.Shares, 2)
	require.True(t, dec("0.24999999774999999795").Equal(round.Shares[0].TotalShares), "got %s", round.Shares[0].TotalShares)

	persisted, err := store.GetDistribution(ctx, round.Distribution.ID)
	require.NoError(t, err)
	assert.True(t, round.Distribution.TotalShares.Equal(persisted.TotalShares),
		"allocated %s, persisted %s", round.Distribution.TotalShares, persisted.TotalShares)

	shares, err := store.GetUserShares(ctx, round.Distribution.ID)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	for i := range shares {
		assert.Equal(t, round.Shares[i].WalletAddress, shares[i].WalletAddress)
		assert.True(t, round.Shares[i].TotalShares.Equal(shares[i].TotalShares),
			"allocated %s, persisted %s", round.Shares[i].TotalShares, shares[i].TotalShares)
		assert.True(t, round.Shares[i].GovernanceWeight.Equal(shares[i].GovernanceWeight))
		assert.True(t, round.Shares[i].RewardAmount.Equal(shares[i].RewardAmount))
	}
}

func testListDistributions(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	seedStake(t, store, walletA, "10")
	for i := range 3 {
		createRound(t, store, "10", now.Add(time.Duration(i)*time.Hour))
	}

	distributions, total, err := store.ListDistributions(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, distributions, 2)
	assert.Equal(t, int64(3), distributions[0].RoundNumber)
	assert.Equal(t, int64(2), distributions[1].RoundNumber)

	distributions, _, err = store.ListDistributions(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, distributions, 1)
	assert.Equal(t, int64(1), distributions[0].RoundNumber)

	missing, err := store.GetDistribution(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Test: Claims
// =============================================================================

func testCreateClaim(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	seedSimpleRound(t, store)
	round := createRound(t, store, "1000", now)
	id := round.Distribution.ID

	t.Run("claim copies the reward amount", func(t *testing.T) {
		claim, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: id, WalletAddress: walletA, ClaimedAt: now.Add(time.Hour)})
		require.NoError(t, err)
		assert.True(t, dec("330.578512").Equal(claim.ClaimAmount))
		assert.Equal(t, walletA, claim.WalletAddress)

		d, err := store.GetDistribution(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, d.ClaimedCount)
		assert.True(t, dec("330.578512").Equal(d.ClaimedAmount))
		assert.True(t, d.ClaimedAmount.Add(d.UnclaimedAmount).Equal(d.TotalAmount))
		assert.Equal(t, domain.DistributionStatusActive, d.Status)
	})

	t.Run("second claim by the same wallet is rejected", func(t *testing.T) {
		_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: id, WalletAddress: checksumLike(walletA), ClaimedAt: now.Add(time.Hour)})
		assert.True(t, errors.Is(err, domain.ErrAlreadyClaimed))

		d, err := store.GetDistribution(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, d.ClaimedCount)
	})

	t.Run("wallet without share", func(t *testing.T) {
		_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: id, WalletAddress: walletC, ClaimedAt: now})
		assert.True(t, errors.Is(err, domain.ErrNoShareForWallet))
	})

	t.Run("unknown distribution", func(t *testing.T) {
		_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: uuid.New(), WalletAddress: walletA, ClaimedAt: now})
		assert.True(t, errors.Is(err, domain.ErrDistributionNotFound))
	})

	t.Run("claim at expiry is rejected", func(t *testing.T) {
		_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: id, WalletAddress: walletB, ClaimedAt: round.Distribution.ExpiresAt})
		assert.True(t, errors.Is(err, domain.ErrDistributionExpired))
	})

	t.Run("last claim completes the round", func(t *testing.T) {
		_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: id, WalletAddress: walletB, ClaimedAt: now.Add(2 * time.Hour)})
		require.NoError(t, err)

		d, err := store.GetDistribution(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.DistributionStatusCompleted, d.Status)
		assert.Equal(t, 2, d.ClaimedCount)
		assert.True(t, d.UnclaimedAmount.IsZero())
		assert.True(t, d.ClaimedAmount.Equal(d.TotalAmount))
	})
}

func testWalletRewards(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	seedSimpleRound(t, store)
	first := createRound(t, store, "1000", now)
	createRound(t, store, "100", now.Add(7*24*time.Hour))

	_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: first.Distribution.ID, WalletAddress: walletA, ClaimedAt: now})
	require.NoError(t, err)

	rewards, err := store.GetWalletRewards(ctx, checksumLike(walletA))
	require.NoError(t, err)
	require.Len(t, rewards, 2)

	assert.Equal(t, int64(2), rewards[0].RoundNumber)
	assert.Nil(t, rewards[0].ClaimedAt)
	assert.Equal(t, int64(1), rewards[1].RoundNumber)
	require.NotNil(t, rewards[1].ClaimedAt)
	assert.True(t, dec("330.578512").Equal(rewards[1].RewardAmount))
	assert.Equal(t, domain.DistributionStatusActive, rewards[1].DistributionStatus)

	none, err := store.GetWalletRewards(ctx, walletC)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Test: Expiry
// =============================================================================

func testExpireDistribution(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	seedSimpleRound(t, store)

	t.Run("rollover returns unclaimed funds to the vault", func(t *testing.T) {
		round := createRound(t, store, "1000", now)
		_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: round.Distribution.ID, WalletAddress: walletA, ClaimedAt: now})
		require.NoError(t, err)

		notYet, err := store.GetExpiredDistributions(ctx, now, 10)
		require.NoError(t, err)
		assert.Empty(t, notYet)

		expiredAt := round.Distribution.ExpiresAt
		due, err := store.GetExpiredDistributions(ctx, expiredAt, 10)
		require.NoError(t, err)
		require.Len(t, due, 1)

		expired, err := store.ExpireDistribution(ctx, ExpireDistributionInput{ID: round.Distribution.ID, Now: expiredAt, Policy: domain.ExpiryPolicyRollover})
		require.NoError(t, err)
		require.NotNil(t, expired)
		assert.Equal(t, domain.DistributionStatusExpired, expired.Status)
		assert.True(t, dec("669.421488").Equal(expired.ReclaimedAmount))

		d, err := store.GetDistribution(ctx, round.Distribution.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DistributionStatusExpired, d.Status)
		assert.True(t, d.ClaimedAmount.Add(d.UnclaimedAmount).Equal(d.TotalAmount))
		require.NotNil(t, d.ExpiredAt)

		vault, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, dec("669.421488").Equal(vault.TotalBalance))
		assert.True(t, dec("330.578512").Equal(vault.TotalDistributed))
		assertVaultConserved(t, vault)

		_, err = store.CreateClaim(ctx, CreateClaimInput{DistributionID: round.Distribution.ID, WalletAddress: walletB, ClaimedAt: now})
		assert.True(t, errors.Is(err, domain.ErrDistributionExpired))

		again, err := store.ExpireDistribution(ctx, ExpireDistributionInput{ID: round.Distribution.ID, Now: expiredAt, Policy: domain.ExpiryPolicyRollover})
		require.NoError(t, err)
		assert.Nil(t, again)

		next, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: expiredAt, TTL: domain.DefaultRoundTTL}, allocateFromStore(store))
		require.NoError(t, err)
		assert.True(t, dec("669.421488").Equal(next.Distribution.TotalAmount))
	})

	t.Run("forfeit leaves the vault untouched", func(t *testing.T) {
		round := createRound(t, store, "10", now)
		before, err := store.GetVault(ctx)
		require.NoError(t, err)

		expired, err := store.ExpireDistribution(ctx, ExpireDistributionInput{ID: round.Distribution.ID, Now: round.Distribution.ExpiresAt, Policy: domain.ExpiryPolicyForfeit})
		require.NoError(t, err)
		require.NotNil(t, expired)
		assert.True(t, expired.ReclaimedAmount.IsZero())

		after, err := store.GetVault(ctx)
		require.NoError(t, err)
		assert.True(t, before.TotalBalance.Equal(after.TotalBalance))
		assert.Equal(t, before.Version, after.Version)
		assertVaultConserved(t, after)
	})

	t.Run("active round before expiry is left alone", func(t *testing.T) {
		round := createRound(t, store, "10", now)
		expired, err := store.ExpireDistribution(ctx, ExpireDistributionInput{ID: round.Distribution.ID, Now: now, Policy: domain.ExpiryPolicyRollover})
		require.NoError(t, err)
		assert.Nil(t, expired)
	})

	t.Run("unknown distribution", func(t *testing.T) {
		_, err := store.ExpireDistribution(ctx, ExpireDistributionInput{ID: uuid.New(), Now: now, Policy: domain.ExpiryPolicyRollover})
		assert.True(t, errors.Is(err, domain.ErrDistributionNotFound))
	})
}

// =============================================================================
// Test: Concurrency
// =============================================================================

func testConcurrentDeposits(t *testing.T, store Store) {
	ctx := context.Background()
	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateDeposit(ctx, buildTestDeposit("1.5", domain.RevenueSourceStakingFees, nil))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	vault, err := store.GetVault(ctx)
	require.NoError(t, err)
	assert.True(t, dec("30").Equal(vault.TotalBalance), "got %s", vault.TotalBalance)
	assert.Equal(t, int64(workers), vault.Version)
}

func testConcurrentClaims(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()
	const workers = 10

	seedSimpleRound(t, store)
	round := createRound(t, store, "1000", now)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateClaim(ctx, CreateClaimInput{DistributionID: round.Distribution.ID, WalletAddress: walletB, ClaimedAt: now})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrAlreadyClaimed), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	d, err := store.GetDistribution(ctx, round.Distribution.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, d.ClaimedCount)
	assert.True(t, dec("669.421488").Equal(d.ClaimedAmount))
}

func testConcurrentDistributions(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()
	const workers = 4

	seedSimpleRound(t, store)
	_, err := store.CreateDeposit(ctx, buildTestDeposit("1000", domain.RevenueSourceMarketplace, nil))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, allocateFromStore(store))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrInsufficientBalance), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	vault, err := store.GetVault(ctx)
	require.NoError(t, err)
	assert.True(t, vault.TotalBalance.IsZero())
	assert.True(t, dec("1000").Equal(vault.TotalDistributed))
}

func testDistributionDuringDeposits(t *testing.T, store Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	now := time.Now().UTC()
	const deposits = 8

	seedSimpleRound(t, store)
	_, err := store.CreateDeposit(ctx, buildTestDeposit("1000", domain.RevenueSourceMarketplace, nil))
	require.NoError(t, err)

	allocate := allocateFromStore(store)
	locked := make(chan struct{})
	// hold the vault lock until the deposits queue up behind it
	slowAllocate := func(ctx context.Context, balance decimal.Decimal) (*domain.Allocation, error) {
		close(locked)
		time.Sleep(200 * time.Millisecond)
		return allocate(ctx, balance)
	}

	var round *DistributionWithShares
	var roundErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		round, roundErr = store.CreateDistribution(ctx, CreateDistributionInput{Now: now, TTL: domain.DefaultRoundTTL}, slowAllocate)
	}()

	select {
	case <-locked:
	case <-ctx.Done():
	}
	errs := make(chan error, deposits)
	for range deposits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateDeposit(ctx, buildTestDeposit("1.5", domain.RevenueSourceTradingBot, nil))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	require.NoError(t, roundErr)
	for err := range errs {
		require.NoError(t, err)
	}

	vault, err := store.GetVault(ctx)
	require.NoError(t, err)
	assertVaultConserved(t, vault)
	assert.True(t, dec("1012").Equal(vault.TotalDeposited), "got %s", vault.TotalDeposited)
	assert.True(t, round.Distribution.TotalAmount.Equal(vault.TotalDistributed))

	// every deposit landed whole on one side of the round
	assert.True(t, round.Distribution.TotalAmount.Add(vault.TotalBalance).Equal(dec("1012")))
	assert.True(t, round.Distribution.TotalAmount.Sub(dec("1000")).Mod(dec("1.5")).IsZero(),
		"round total %s", round.Distribution.TotalAmount)

	shares, err := store.GetUserShares(ctx, round.Distribution.ID)
	require.NoError(t, err)
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.RewardAmount)
	}
	assert.True(t, round.Distribution.TotalAmount.Equal(total))
}

// RunStoreTests runs all store tests, each against a freshly initialized store
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"VaultInitialized", testVaultInitialized},
		{"CreateDeposit", testCreateDeposit},
		{"RevenueBreakdown", testRevenueBreakdown},
		{"EligibilitySources", testEligibilitySources},
		{"EligibilityWalletKeys", testEligibilityWalletKeys},
		{"CreateDistribution", testCreateDistribution},
		{"ShareValuesRoundTrip", testShareValuesRoundTrip},
		{"ListDistributions", testListDistributions},
		{"CreateClaim", testCreateClaim},
		{"WalletRewards", testWalletRewards},
		{"ExpireDistribution", testExpireDistribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

// RunConcurrencyTests runs the tests that need committed, concurrent transactions
func RunConcurrencyTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ConcurrentDeposits", testConcurrentDeposits},
		{"ConcurrentClaims", testConcurrentClaims},
		{"ConcurrentDistributions", testConcurrentDistributions},
		{"DistributionDuringDeposits", testDistributionDuringDeposits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}
