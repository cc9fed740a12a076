package jetstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/adapter"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/messaging"
)

type publisher struct {
	nc adapter.NatsConn
	js adapter.JetStream
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(ctx context.Context, cfg ConnectionConfig, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	nc, js, err := connect(ctx, cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &publisher{nc: nc, js: js}, nil
}

// Publish publishes a revenue event. The event ID is used as the JetStream message ID
// so a retried publish is deduplicated by the server.
func (p *publisher) Publish(ctx context.Context, event *domain.Event) error {
	logger.DebugCtx(ctx, "Publishing revenue event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
	)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := p.js.Publish(ctx, event.Subject(), data, jetstream.WithMsgID(event.ID)); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	return nil
}

// Close drains and closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	if err := p.nc.Drain(); err != nil {
		logger.Error(err, zap.String("message", "Failed to drain NATS connection"))
		p.nc.Close()
	}
}
