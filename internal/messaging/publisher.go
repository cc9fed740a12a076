package messaging

import (
	"context"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// Publisher defines the interface for publishing revenue events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish publishes an event on its subject
	Publish(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event *domain.Event) error {
	return nil
}

func (noopPublisher) Close() {}
