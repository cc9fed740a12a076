package messaging

import (
	"context"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// DepositHandler is called for every deposit request received from a revenue producer
type DepositHandler func(ctx context.Context, request *domain.DepositRequest) error

// Subscriber defines the interface for consuming deposit requests
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// Run consumes deposit requests until ctx is canceled
	Run(ctx context.Context, handler DepositHandler) error
	// Close closes the connection and cleans up resources
	Close()
}
