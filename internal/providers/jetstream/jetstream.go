package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/adapter"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
)

const connectAttempts = 5

// ConnectionConfig holds the configuration for a NATS JetStream connection
type ConnectionConfig struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

// StreamConfig returns the stream holding every revenue subject
func (c ConnectionConfig) StreamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:     c.StreamName,
		Subjects: []string{domain.EventSubjectPrefix + ".>"},
	}
}

// connect dials NATS with bounded exponential backoff and ensures the revenue stream exists
func connect(ctx context.Context, cfg ConnectionConfig, natsJS adapter.NatsJetStream) (adapter.NatsConn, adapter.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	var nc adapter.NatsConn
	var js adapter.JetStream
	operation := func() error {
		var err error
		nc, js, err = natsJS.Connect(cfg.URL, opts...)
		return err
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Failed to connect to NATS, retrying",
			zap.Error(err),
			zap.String("url", cfg.URL),
			zap.Duration("next_retry_in", next),
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectAttempts), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if err := js.EnsureStream(ctx, cfg.StreamConfig()); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return nc, js, nil
}
