package sweeper

import (
	"context"
)

// Sweeper is a background maintenance loop run next to the scheduler,
// such as closing the claim window of expired distribution rounds.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs cycles until ctx is canceled or Stop is called. It blocks.
	Start(ctx context.Context) error

	// Stop ends the loop after the cycle in flight and waits for it,
	// or until ctx is done
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
