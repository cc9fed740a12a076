package eligibility

import (
	"context"
	"fmt"
	"sort"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
)

const defaultWorkerPoolSize = 8

// Config holds configuration for the eligibility scanner
type Config struct {
	// WorkerPoolSize bounds the number of wallets whose boost assets are fetched concurrently
	WorkerPoolSize int
}

// Scanner snapshots the raw share inputs of every eligible stakeholder
//
//go:generate mockgen -source=scanner.go -destination=../mocks/eligibility_scanner.go -package=mocks -mock_names=Scanner=MockScanner
type Scanner interface {
	// Scan returns one input per wallet with a positive stake, ordered by wallet address.
	// Wallets are normalized with domain.NormalizeWallet; stakes of invalid addresses are skipped.
	// An empty result means nobody is eligible; any source failure aborts the scan.
	Scan(ctx context.Context) ([]domain.ShareInput, error)
	// ScanWallet returns the share input of a single wallet, nil when it has no stake
	ScanWallet(ctx context.Context, wallet string) (*domain.ShareInput, error)
}

type scanner struct {
	config       Config
	stakes       StakeSource
	collectibles CollectibleSource
	relics       RelicSource
}

// NewScanner creates a new eligibility scanner
func NewScanner(config Config, stakes StakeSource, collectibles CollectibleSource, relics RelicSource) Scanner {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = defaultWorkerPoolSize
	}
	return &scanner{
		config:       config,
		stakes:       stakes,
		collectibles: collectibles,
		relics:       relics,
	}
}

// Scan enumerates stakers and fetches their boost asset counts through a bounded worker pool
func (s *scanner) Scan(ctx context.Context) ([]domain.ShareInput, error) {
	stakers, err := s.stakes.ListStakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakers: %w", err)
	}

	positions := normalizePositions(ctx, stakers)
	if len(positions) == 0 {
		logger.InfoCtx(ctx, "No wallet has a positive stake")
		return []domain.ShareInput{}, nil
	}

	pool := pond.NewResultPool[domain.ShareInput](
		min(s.config.WorkerPoolSize, len(positions)),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, position := range positions {
		group.SubmitErr(func() (domain.ShareInput, error) {
			return s.shareInput(ctx, position)
		})
	}

	inputs, err := group.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(inputs, func(i, j int) bool {
		return inputs[i].WalletAddress < inputs[j].WalletAddress
	})

	logger.InfoCtx(ctx, "Eligibility scan completed", zap.Int("eligible_wallets", len(inputs)))

	return inputs, nil
}

// ScanWallet returns the share input of a single wallet
func (s *scanner) ScanWallet(ctx context.Context, wallet string) (*domain.ShareInput, error) {
	wallet, err := domain.NormalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	staked, err := s.stakes.StakedBalance(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get staked balance: %w", err)
	}
	if !staked.IsPositive() {
		return nil, nil
	}

	input, err := s.shareInput(ctx, domain.StakePosition{WalletAddress: wallet, CdxStaked: staked})
	if err != nil {
		return nil, err
	}
	return &input, nil
}

// normalizePositions keys positions by normalized wallet, summing the stakes of rows that
// normalize to the same wallet and dropping invalid addresses and empty stakes
func normalizePositions(ctx context.Context, stakers []domain.StakePosition) []domain.StakePosition {
	positions := make([]domain.StakePosition, 0, len(stakers))
	index := make(map[string]int, len(stakers))
	for _, staker := range stakers {
		wallet, err := domain.NormalizeWallet(staker.WalletAddress)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping stake of an invalid wallet",
				zap.String("wallet", staker.WalletAddress),
				zap.String("cdx_staked", staker.CdxStaked.String()))
			continue
		}

		if i, ok := index[wallet]; ok {
			positions[i].CdxStaked = positions[i].CdxStaked.Add(staker.CdxStaked)
			continue
		}
		index[wallet] = len(positions)
		positions = append(positions, domain.StakePosition{WalletAddress: wallet, CdxStaked: staker.CdxStaked})
	}

	eligible := positions[:0]
	for _, position := range positions {
		if position.CdxStaked.IsPositive() {
			eligible = append(eligible, position)
		}
	}
	return eligible
}

func (s *scanner) shareInput(ctx context.Context, position domain.StakePosition) (domain.ShareInput, error) {
	wallet := position.WalletAddress

	nftCount, err := s.collectibles.OwnedCount(ctx, wallet)
	if err != nil {
		return domain.ShareInput{}, fmt.Errorf("failed to count collectibles of %s: %w", wallet, err)
	}

	relicCount, err := s.relics.EquippedCount(ctx, wallet)
	if err != nil {
		return domain.ShareInput{}, fmt.Errorf("failed to count equipped relics of %s: %w", wallet, err)
	}

	return domain.ShareInput{
		WalletAddress: wallet,
		CdxStaked:     position.CdxStaked,
		NFTCount:      nftCount,
		RelicCount:    relicCount,
	}, nil
}
