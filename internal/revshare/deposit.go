package revshare

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/metrics"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/store/schema"
)

// Deposit validates a revenue deposit and credits the vault
func (s *service) Deposit(ctx context.Context, input DepositInput) (*schema.RevenueDeposit, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	source, err := domain.ParseRevenueSource(input.Source)
	if err != nil {
		return nil, err
	}

	var metadata datatypes.JSON
	if len(input.Metadata) > 0 {
		raw, err := json.Marshal(input.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal deposit metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}

	deposit, err := s.store.CreateDeposit(ctx, store.CreateDepositInput{
		Amount:      input.Amount,
		Source:      source,
		SourceID:    trimOptional(input.SourceID),
		Description: trimOptional(input.Description),
		TxReference: trimOptional(input.TxReference),
		Metadata:    metadata,
		CreatedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	metrics.DepositsTotal.WithLabelValues(string(source)).Inc()
	metrics.DepositedAmount.WithLabelValues(string(source)).Add(deposit.Amount.InexactFloat64())

	logger.InfoCtx(ctx, "Revenue deposited",
		zap.String("depositID", deposit.ID.String()),
		zap.String("source", string(source)),
		zap.String("amount", deposit.Amount.String()))

	s.publish(ctx, domain.EventTypeDepositConfirmed, domain.DepositConfirmedData{
		DepositID:   deposit.ID.String(),
		Amount:      deposit.Amount.String(),
		Source:      source,
		TxReference: deposit.TxReference,
	})

	return deposit, nil
}

// RevenueBreakdown aggregates deposits per source within the optional date range
func (s *service) RevenueBreakdown(ctx context.Context, filter store.RevenueBreakdownFilter) ([]store.SourceTotal, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, fmt.Errorf("%w: from %s is not before to %s", domain.ErrInvalidDateRange,
			filter.From.String(), filter.To.String())
	}
	for _, src := range filter.Sources {
		if !src.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSource, src)
		}
	}

	totals, err := s.store.GetRevenueBreakdown(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue breakdown: %w", err)
	}
	if totals == nil {
		totals = []store.SourceTotal{}
	}

	return totals, nil
}

// trimOptional drops blank optional strings so they are stored as NULL
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
