package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

const (
	depositTxReferenceIndex = "idx_revenue_deposits_source_tx_reference"

	// rowLockTimeout bounds how long a ledger transaction waits on the vault or a round row
	rowLockTimeout = 5 * time.Second

	// walletKeyExpr is the key eligibility rows are matched on: lower-cased, without 0x
	walletKeyExpr = "REGEXP_REPLACE(LOWER(wallet_address), '^0x', '')"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// walletKey returns the value walletKeyExpr is compared against
func walletKey(wallet string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(wallet)), "0x")
}

// setLockTimeout makes row locks taken later in tx fail with lock_not_available instead of waiting forever
func setLockTimeout(tx *gorm.DB) error {
	if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = %d", rowLockTimeout.Milliseconds())).Error; err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays below
// PostgreSQL's limit of 65535 parameters per statement.
//
// Parameters:
//   - totalRecords: total number of records to insert
//   - fieldsPerRecord: number of fields/parameters per record
//
// A fixed headroom is reserved for batch-level overhead such as ON CONFLICT parameters.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/max(fieldsPerRecord, 1), 1)

	if totalRecords > 0 && safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// GetVault retrieves the vault row
func (s *pgStore) GetVault(ctx context.Context) (*schema.Vault, error) {
	var vault schema.Vault
	err := s.db.WithContext(ctx).Where("id = ?", schema.VaultID).First(&vault).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vault is not initialized, run the migrations first")
		}
		return nil, classifyError(fmt.Errorf("failed to get vault: %w", err))
	}

	return &vault, nil
}

// CreateDeposit inserts a confirmed deposit and credits the vault in one transaction
func (s *pgStore) CreateDeposit(ctx context.Context, input CreateDepositInput) (*schema.RevenueDeposit, error) {
	deposit := schema.RevenueDeposit{
		ID:          uuid.New(),
		Amount:      input.Amount,
		Source:      input.Source,
		SourceID:    input.SourceID,
		Description: input.Description,
		TxReference: input.TxReference,
		Metadata:    input.Metadata,
		Status:      domain.DepositStatusConfirmed,
		CreatedAt:   input.CreatedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		if err := tx.Create(&deposit).Error; err != nil {
			if isUniqueViolation(err, depositTxReferenceIndex) {
				return fmt.Errorf("%w: source %s tx reference %s", domain.ErrDuplicateDeposit, input.Source, *input.TxReference)
			}
			return fmt.Errorf("failed to create deposit: %w", err)
		}

		result := tx.Model(&schema.Vault{}).
			Where("id = ?", schema.VaultID).
			Updates(map[string]interface{}{
				"total_balance":   gorm.Expr("total_balance + ?", input.Amount),
				"total_deposited": gorm.Expr("total_deposited + ?", input.Amount),
				"version":         gorm.Expr("version + 1"),
				"updated_at":      gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to credit vault: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("vault is not initialized, run the migrations first")
		}

		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &deposit, nil
}

// GetRevenueBreakdown aggregates deposits per source ordered by source
func (s *pgStore) GetRevenueBreakdown(ctx context.Context, filter RevenueBreakdownFilter) ([]SourceTotal, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.RevenueDeposit{}).
		Select("source, SUM(amount) AS total, COUNT(*) AS count")

	if len(filter.Sources) > 0 {
		sources := make([]string, len(filter.Sources))
		for i, src := range filter.Sources {
			sources[i] = string(src)
		}
		query = query.Where("source IN ?", sources)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var totals []SourceTotal
	if err := query.Group("source").Order("source").Scan(&totals).Error; err != nil {
		return nil, classifyError(fmt.Errorf("failed to aggregate revenue: %w", err))
	}

	return totals, nil
}

// CreateDistribution locks the vault, lets allocate split its balance and persists the round.
// Concurrent callers serialize on the vault row; the loser sees the drained balance.
func (s *pgStore) CreateDistribution(ctx context.Context, input CreateDistributionInput, allocate AllocateFunc) (*DistributionWithShares, error) {
	var result *DistributionWithShares

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		var vault schema.Vault
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", schema.VaultID).
			First(&vault).Error; err != nil {
			return fmt.Errorf("failed to lock vault: %w", err)
		}

		allocation, err := allocate(ctx, vault.TotalBalance)
		if err != nil {
			return err
		}
		if !allocation.TotalAmount.Equal(vault.TotalBalance) {
			return fmt.Errorf("allocation total %s does not match vault balance %s",
				allocation.TotalAmount.String(), vault.TotalBalance.String())
		}

		var lastRound int64
		if err := tx.Model(&schema.Distribution{}).
			Select("COALESCE(MAX(round_number), 0)").
			Row().Scan(&lastRound); err != nil {
			return fmt.Errorf("failed to get last round number: %w", err)
		}

		distribution := schema.Distribution{
			ID:              uuid.New(),
			RoundNumber:     lastRound + 1,
			TotalAmount:     allocation.TotalAmount,
			TotalCdxStaked:  allocation.TotalCdxStaked,
			TotalShares:     allocation.TotalShares,
			AmountPerShare:  allocation.AmountPerShare,
			EligibleWallets: len(allocation.Shares),
			ClaimedCount:    0,
			ClaimedAmount:   decimal.Zero,
			UnclaimedAmount: allocation.TotalAmount,
			ReclaimedAmount: decimal.Zero,
			Status:          domain.DistributionStatusActive,
			DistributedAt:   input.Now,
			ExpiresAt:       input.Now.Add(input.TTL),
		}
		if err := tx.Create(&distribution).Error; err != nil {
			return fmt.Errorf("failed to create distribution: %w", err)
		}

		shares := make([]schema.UserShare, 0, len(allocation.Shares))
		for _, share := range allocation.Shares {
			shares = append(shares, schema.UserShare{
				ID:                   uuid.New(),
				DistributionID:       distribution.ID,
				WalletAddress:        strings.ToLower(share.WalletAddress),
				CdxStaked:            share.CdxStaked,
				BaseShares:           share.BaseShares,
				NFTCount:             share.NFTCount,
				RelicCount:           share.RelicCount,
				NFTBoostMultiplier:   share.NFTBoostMultiplier,
				RelicBoostMultiplier: share.RelicBoostMultiplier,
				TotalShares:          share.TotalShares,
				SharePercentage:      share.SharePercentage,
				RewardAmount:         share.RewardAmount,
				GovernanceWeight:     share.GovernanceWeight,
				CreatedAt:            input.Now,
			})
		}

		batchSize := calculateSafeBatchSize(len(shares), schema.UserShareFieldCount)
		if err := tx.CreateInBatches(shares, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create user shares: %w", err)
		}

		update := tx.Model(&schema.Vault{}).
			Where("id = ?", schema.VaultID).
			Updates(map[string]interface{}{
				"total_balance":        decimal.Zero,
				"total_distributed":    gorm.Expr("total_distributed + ?", vault.TotalBalance),
				"last_distribution_at": input.Now,
				"version":              gorm.Expr("version + 1"),
				"updated_at":           input.Now,
			})
		if update.Error != nil {
			return fmt.Errorf("failed to drain vault: %w", update.Error)
		}

		result = &DistributionWithShares{
			Distribution: distribution,
			Shares:       shares,
		}
		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return result, nil
}

// GetDistribution retrieves a distribution by ID
func (s *pgStore) GetDistribution(ctx context.Context, id uuid.UUID) (*schema.Distribution, error) {
	var distribution schema.Distribution
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&distribution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, classifyError(fmt.Errorf("failed to get distribution: %w", err))
	}

	return &distribution, nil
}

// ListDistributions retrieves distributions with pagination, newest round first
func (s *pgStore) ListDistributions(ctx context.Context, limit int, offset uint64) ([]schema.Distribution, uint64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Distribution{}).Count(&total).Error; err != nil {
		return nil, 0, classifyError(fmt.Errorf("failed to count distributions: %w", err))
	}

	var distributions []schema.Distribution
	err := s.db.WithContext(ctx).
		Order("round_number DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&distributions).Error
	if err != nil {
		return nil, 0, classifyError(fmt.Errorf("failed to list distributions: %w", err))
	}

	return distributions, uint64(total), nil //nolint:gosec,G115
}

// CountDistributions returns the number of rounds ever created
func (s *pgStore) CountDistributions(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Distribution{}).Count(&total).Error; err != nil {
		return 0, classifyError(fmt.Errorf("failed to count distributions: %w", err))
	}
	return total, nil
}

// GetUserShares retrieves the shares of a distribution ordered by wallet address
func (s *pgStore) GetUserShares(ctx context.Context, distributionID uuid.UUID) ([]schema.UserShare, error) {
	var shares []schema.UserShare
	err := s.db.WithContext(ctx).
		Where("distribution_id = ?", distributionID).
		Order("wallet_address ASC").
		Find(&shares).Error
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to get user shares: %w", err))
	}

	return shares, nil
}

// CreateClaim records a claim in one transaction. The unique (distribution_id, wallet_address)
// constraint guarantees at most one claim per wallet per round under concurrency.
func (s *pgStore) CreateClaim(ctx context.Context, input CreateClaimInput) (*schema.RewardClaim, error) {
	wallet := strings.ToLower(input.WalletAddress)
	var claim schema.RewardClaim

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		var distribution schema.Distribution
		if err := tx.Where("id = ?", input.DistributionID).First(&distribution).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrDistributionNotFound, input.DistributionID)
			}
			return fmt.Errorf("failed to get distribution: %w", err)
		}
		if distribution.IsExpiredAt(input.ClaimedAt) {
			return fmt.Errorf("%w: round %d expired at %s", domain.ErrDistributionExpired,
				distribution.RoundNumber, distribution.ExpiresAt.Format(time.RFC3339))
		}

		var share schema.UserShare
		if err := tx.Where("distribution_id = ? AND wallet_address = ?", input.DistributionID, wallet).
			First(&share).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s in round %d", domain.ErrNoShareForWallet, wallet, distribution.RoundNumber)
			}
			return fmt.Errorf("failed to get user share: %w", err)
		}

		claim = schema.RewardClaim{
			ID:             uuid.New(),
			DistributionID: input.DistributionID,
			WalletAddress:  wallet,
			ClaimAmount:    share.RewardAmount,
			ClaimedAt:      input.ClaimedAt,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "distribution_id"}, {Name: "wallet_address"}},
			DoNothing: true,
		}).Create(&claim)
		if result.Error != nil {
			return fmt.Errorf("failed to create claim: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s in round %d", domain.ErrAlreadyClaimed, wallet, distribution.RoundNumber)
		}

		// Counters are updated in place; the status guard loses to a concurrent expiry
		update := tx.Model(&schema.Distribution{}).
			Where("id = ? AND status <> ?", input.DistributionID, domain.DistributionStatusExpired).
			Updates(map[string]interface{}{
				"claimed_count":    gorm.Expr("claimed_count + 1"),
				"claimed_amount":   gorm.Expr("claimed_amount + ?", share.RewardAmount),
				"unclaimed_amount": gorm.Expr("unclaimed_amount - ?", share.RewardAmount),
				"status": gorm.Expr("CASE WHEN claimed_count + 1 >= eligible_wallets THEN ? ELSE status END",
					string(domain.DistributionStatusCompleted)),
				"updated_at": input.ClaimedAt,
			})
		if update.Error != nil {
			return fmt.Errorf("failed to update distribution counters: %w", update.Error)
		}
		if update.RowsAffected == 0 {
			return fmt.Errorf("%w: round %d", domain.ErrDistributionExpired, distribution.RoundNumber)
		}

		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &claim, nil
}

// GetWalletRewards lists every share of a wallet, newest round first
func (s *pgStore) GetWalletRewards(ctx context.Context, wallet string) ([]WalletReward, error) {
	var rewards []WalletReward
	err := s.db.WithContext(ctx).
		Table("user_shares us").
		Select(`us.distribution_id, d.round_number, us.reward_amount, us.share_percentage,
			d.distributed_at, d.expires_at, d.status, rc.claimed_at`).
		Joins("JOIN distributions d ON d.id = us.distribution_id").
		Joins("LEFT JOIN reward_claims rc ON rc.distribution_id = us.distribution_id AND rc.wallet_address = us.wallet_address").
		Where("us.wallet_address = ?", strings.ToLower(wallet)).
		Order("d.round_number DESC").
		Scan(&rewards).Error
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to get wallet rewards: %w", err))
	}

	return rewards, nil
}

// GetExpiredDistributions lists active distributions whose claim window closed, oldest first
func (s *pgStore) GetExpiredDistributions(ctx context.Context, now time.Time, limit int) ([]schema.Distribution, error) {
	var distributions []schema.Distribution
	err := s.db.WithContext(ctx).
		Where("status = ? AND expires_at <= ?", domain.DistributionStatusActive, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&distributions).Error
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to get expired distributions: %w", err))
	}

	return distributions, nil
}

// ExpireDistribution marks an active distribution past its window as expired.
// Under the rollover policy the unclaimed balance is returned to the vault in the same transaction.
// Returns nil when the distribution is not active or still claimable.
func (s *pgStore) ExpireDistribution(ctx context.Context, input ExpireDistributionInput) (*schema.Distribution, error) {
	var expired *schema.Distribution

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		var distribution schema.Distribution
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ID).
			First(&distribution).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrDistributionNotFound, input.ID)
			}
			return fmt.Errorf("failed to lock distribution: %w", err)
		}

		if distribution.Status != domain.DistributionStatusActive || input.Now.Before(distribution.ExpiresAt) {
			return nil
		}

		reclaimed := decimal.Zero
		if input.Policy == domain.ExpiryPolicyRollover {
			reclaimed = distribution.UnclaimedAmount
		}

		if err := tx.Model(&distribution).Updates(map[string]interface{}{
			"status":           domain.DistributionStatusExpired,
			"reclaimed_amount": reclaimed,
			"expired_at":       input.Now,
			"updated_at":       input.Now,
		}).Error; err != nil {
			return fmt.Errorf("failed to expire distribution: %w", err)
		}

		if reclaimed.IsPositive() {
			update := tx.Model(&schema.Vault{}).
				Where("id = ?", schema.VaultID).
				Updates(map[string]interface{}{
					"total_balance":     gorm.Expr("total_balance + ?", reclaimed),
					"total_distributed": gorm.Expr("total_distributed - ?", reclaimed),
					"version":           gorm.Expr("version + 1"),
					"updated_at":        input.Now,
				})
			if update.Error != nil {
				return fmt.Errorf("failed to return unclaimed funds to vault: %w", update.Error)
			}
		}

		distribution.Status = domain.DistributionStatusExpired
		distribution.ReclaimedAmount = reclaimed
		expiredAt := input.Now
		distribution.ExpiredAt = &expiredAt
		expired = &distribution
		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return expired, nil
}

// ListStakers returns every wallet with a positive stake, ordered by address.
// Rows of one wallet written with and without the 0x prefix are summed under the prefixed form.
func (s *pgStore) ListStakers(ctx context.Context) ([]domain.StakePosition, error) {
	var positions []domain.StakePosition
	err := s.db.WithContext(ctx).
		Model(&schema.StakePosition{}).
		Select("'0x' || " + walletKeyExpr + " AS wallet_address, SUM(cdx_staked) AS cdx_staked").
		Group(walletKeyExpr).
		Having("SUM(cdx_staked) > 0").
		Order("wallet_address ASC").
		Scan(&positions).Error
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to list stakers: %w", err))
	}

	return positions, nil
}

// StakedBalance returns the stake of a wallet, matched case-insensitively with or without the 0x prefix
func (s *pgStore) StakedBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.db.WithContext(ctx).
		Model(&schema.StakePosition{}).
		Select("COALESCE(SUM(cdx_staked), 0)").
		Where(walletKeyExpr+" = ?", walletKey(wallet)).
		Row().Scan(&balance)
	if err != nil {
		return decimal.Zero, classifyError(fmt.Errorf("failed to get staked balance: %w", err))
	}

	return balance, nil
}

// OwnedCount returns the number of collectibles held by a wallet, matched like StakedBalance
func (s *pgStore) OwnedCount(ctx context.Context, wallet string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.NFTOwnership{}).
		Where(walletKeyExpr+" = ?", walletKey(wallet)).
		Count(&count).Error
	if err != nil {
		return 0, classifyError(fmt.Errorf("failed to count collectibles: %w", err))
	}

	return int(count), nil
}

// EquippedCount returns the number of relics a wallet has equipped, matched like StakedBalance
func (s *pgStore) EquippedCount(ctx context.Context, wallet string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.RelicInventory{}).
		Where(walletKeyExpr+" = ? AND is_equipped = ?", walletKey(wallet), true).
		Count(&count).Error
	if err != nil {
		return 0, classifyError(fmt.Errorf("failed to count equipped relics: %w", err))
	}

	return int(count), nil
}
