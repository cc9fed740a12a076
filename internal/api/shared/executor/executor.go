package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-revshare/internal/api/shared/constants"
	"github.com/feral-file/ff-revshare/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-revshare/internal/api/shared/errors"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/revshare"
	"github.com/feral-file/ff-revshare/internal/store"
)

// Executor is the interface for the API executor.
// Every error it returns is an *apierrors.APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateDeposit records a revenue deposit into the vault
	CreateDeposit(ctx context.Context, req dto.DepositRequest) (*dto.DepositResponse, error)

	// CreateDistribution drains the vault into a new round
	CreateDistribution(ctx context.Context) (*dto.DistributionResponse, error)

	// GetDistribution retrieves a round with its shares
	GetDistribution(ctx context.Context, distributionID string) (*dto.DistributionResponse, error)

	// ListDistributions retrieves the round history, newest first
	ListDistributions(ctx context.Context, limit *int, offset *uint64) (*dto.DistributionListResponse, error)

	// ClaimReward records the claim of a wallet on a round
	ClaimReward(ctx context.Context, distributionID string, req dto.ClaimRequest) (*dto.ClaimResponse, error)

	// GetVaultStats retrieves the vault totals
	GetVaultStats(ctx context.Context) (*dto.VaultStatsResponse, error)

	// GetWalletRewards retrieves the rewards of a wallet across all rounds
	GetWalletRewards(ctx context.Context, walletAddress string) (*dto.PendingRewardsResponse, error)

	// GetWalletShare retrieves the share a wallet would hold in a round created now
	GetWalletShare(ctx context.Context, walletAddress string) (*dto.WalletShareResponse, error)

	// GetRevenueBreakdown aggregates deposits per source
	GetRevenueBreakdown(ctx context.Context, sources []string, from *time.Time, to *time.Time) (*dto.RevenueBreakdownResponse, error)
}

type executor struct {
	service revshare.Service
}

func NewExecutor(service revshare.Service) Executor {
	return &executor{service: service}
}

func (e *executor) CreateDeposit(ctx context.Context, req dto.DepositRequest) (*dto.DepositResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	deposit, err := e.service.Deposit(ctx, revshare.DepositInput{
		Amount:      amount,
		Source:      req.Source,
		SourceID:    req.SourceID,
		Description: req.Description,
		TxReference: req.TxReference,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to create deposit")
	}

	return dto.MapDepositToDTO(deposit), nil
}

func (e *executor) CreateDistribution(ctx context.Context) (*dto.DistributionResponse, error) {
	summary, err := e.service.CreateDistribution(ctx)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to create distribution")
	}

	return dto.MapDistributionSummaryToDTO(summary), nil
}

func (e *executor) GetDistribution(ctx context.Context, distributionID string) (*dto.DistributionResponse, error) {
	id, err := parseDistributionID(distributionID)
	if err != nil {
		return nil, err
	}

	summary, err := e.service.GetDistribution(ctx, id)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get distribution")
	}

	return dto.MapDistributionSummaryToDTO(summary), nil
}

func (e *executor) ListDistributions(ctx context.Context, limit *int, offset *uint64) (*dto.DistributionListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_DISTRIBUTIONS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	distributions, total, err := e.service.ListDistributions(ctx, *limit, *offset)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to list distributions")
	}

	distributionDTOs := make([]dto.DistributionResponse, len(distributions))
	for i := range distributions {
		distributionDTOs[i] = *dto.MapDistributionToDTO(&distributions[i])
	}

	// Calculate next offset
	var nextOffset *uint64
	if *offset+uint64(len(distributions)) < total { //nolint:gosec,G115
		offsetVal := *offset + uint64(len(distributions)) //nolint:gosec,G115
		nextOffset = &offsetVal
	}

	return &dto.DistributionListResponse{
		Distributions: distributionDTOs,
		Offset:        nextOffset,
		Total:         total,
	}, nil
}

func (e *executor) ClaimReward(ctx context.Context, distributionID string, req dto.ClaimRequest) (*dto.ClaimResponse, error) {
	id, err := parseDistributionID(distributionID)
	if err != nil {
		return nil, err
	}

	claim, err := e.service.Claim(ctx, id, req.WalletAddress)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to claim reward")
	}

	return dto.MapClaimToDTO(claim), nil
}

func (e *executor) GetVaultStats(ctx context.Context) (*dto.VaultStatsResponse, error) {
	stats, err := e.service.VaultStats(ctx)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get vault stats")
	}

	return dto.MapVaultStatsToDTO(stats), nil
}

func (e *executor) GetWalletRewards(ctx context.Context, walletAddress string) (*dto.PendingRewardsResponse, error) {
	pending, err := e.service.PendingRewards(ctx, walletAddress)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get wallet rewards")
	}

	return dto.MapPendingRewardsToDTO(pending), nil
}

func (e *executor) GetWalletShare(ctx context.Context, walletAddress string) (*dto.WalletShareResponse, error) {
	share, err := e.service.WalletShare(ctx, walletAddress)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get wallet share")
	}

	return dto.MapWalletShareToDTO(share), nil
}

func (e *executor) GetRevenueBreakdown(ctx context.Context, sources []string, from *time.Time, to *time.Time) (*dto.RevenueBreakdownResponse, error) {
	if len(sources) > constants.MAX_SOURCES_PER_REQUEST {
		return nil, apierrors.NewValidationError(fmt.Sprintf("at most %d sources are allowed", constants.MAX_SOURCES_PER_REQUEST))
	}

	filter := store.RevenueBreakdownFilter{
		From: from,
		To:   to,
	}
	for _, s := range sources {
		source, err := domain.ParseRevenueSource(s)
		if err != nil {
			return nil, apierrors.NewValidationError(err.Error())
		}
		filter.Sources = append(filter.Sources, source)
	}

	totals, err := e.service.RevenueBreakdown(ctx, filter)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get revenue breakdown")
	}

	return dto.MapRevenueBreakdownToDTO(totals), nil
}

func parseDistributionID(distributionID string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(distributionID))
	if err != nil {
		return uuid.Nil, apierrors.NewBadRequestError("Invalid distribution ID", err.Error())
	}
	return id, nil
}
