package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/adapter"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/messaging"
)

// SubscriberConfig holds the configuration of the deposit request consumer
type SubscriberConfig struct {
	ConnectionConfig
	ConsumerName   string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	WorkerPoolSize int
}

type subscriber struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	config SubscriberConfig
}

// NewSubscriber creates a new deposit request consumer
func NewSubscriber(ctx context.Context, cfg SubscriberConfig, natsJS adapter.NatsJetStream) (messaging.Subscriber, error) {
	nc, js, err := connect(ctx, cfg.ConnectionConfig, natsJS)
	if err != nil {
		return nil, err
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 1
	}

	return &subscriber{nc: nc, js: js, config: cfg}, nil
}

// Run consumes deposit requests with a durable, explicitly acked consumer until ctx is canceled
func (s *subscriber) Run(ctx context.Context, handler messaging.DepositHandler) error {
	logger.InfoCtx(ctx, "Starting deposit consumer",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", s.config.ConsumerName),
	)

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWaitTimeout,
		MaxDeliver:    s.config.MaxDeliver,
		FilterSubject: domain.DepositRequestSubject,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	info, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", info.Name),
		zap.Uint64("pending", info.NumPending),
	)

	pool := pond.NewPool(s.config.WorkerPoolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	sub, err := consumer.Consume(func(msg adapter.Message) {
		pool.Submit(func() {
			s.handleMessage(ctx, msg, handler)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Shutting down deposit consumer")
		return nil
	case <-sub.Closed():
		return errors.New("deposit consumer closed unexpectedly")
	}
}

// handleMessage applies one deposit request. Malformed and invalid requests are terminated,
// already applied ones are acked, and anything else is redelivered.
func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.DepositHandler) {
	fields := []zap.Field{zap.String("subject", msg.Subject())}
	metadata, err := msg.Metadata()
	if err != nil {
		metadata = nil
	}
	if metadata != nil {
		fields = append(fields,
			zap.Uint64("stream_sequence", metadata.Sequence.Stream),
			zap.Uint64("delivery_count", metadata.NumDelivered),
		)
	}

	var request domain.DepositRequest
	if err := json.Unmarshal(msg.Data(), &request); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to unmarshal deposit request: %w", err), fields...)
		s.term(ctx, msg)
		return
	}
	fields = append(fields, zap.String("source", request.Source), zap.String("amount", request.Amount))

	// Redeliveries of a request without its own reference must still collide
	// on the deposit dedup index, so the stream position stands in for it.
	if request.TxReference == nil || *request.TxReference == "" {
		if metadata == nil {
			logger.ErrorCtx(ctx, errors.New("deposit request without tx_reference or stream metadata"), fields...)
			s.term(ctx, msg)
			return
		}
		reference := messageReference(metadata)
		request.TxReference = &reference
		fields = append(fields, zap.String("tx_reference", reference))
	}

	err = handler(ctx, &request)
	switch {
	case err == nil:
		logger.InfoCtx(ctx, "Deposit request applied", fields...)
		s.ack(ctx, msg)
	case errors.Is(err, domain.ErrDuplicateDeposit):
		logger.InfoCtx(ctx, "Deposit request already applied", fields...)
		s.ack(ctx, msg)
	case isTerminal(err):
		logger.ErrorCtx(ctx, fmt.Errorf("rejected deposit request: %w", err), fields...)
		s.term(ctx, msg)
	default:
		logger.WarnCtx(ctx, "Failed to apply deposit request, will be redelivered", append(fields, zap.Error(err))...)
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to nak message: %w", err))
		}
	}
}

func (s *subscriber) ack(ctx context.Context, msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to ack message: %w", err))
	}
}

func (s *subscriber) term(ctx context.Context, msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to terminate message: %w", err))
	}
}

// messageReference identifies a stream message across redeliveries
func messageReference(metadata *jetstream.MsgMetadata) string {
	return fmt.Sprintf("jetstream:%s:%d", metadata.Stream, metadata.Sequence.Stream)
}

func isTerminal(err error) bool {
	return errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidSource) ||
		errors.Is(err, domain.ErrInvalidWallet)
}

// Close drains and closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	if err := s.nc.Drain(); err != nil {
		logger.Error(err, zap.String("message", "Failed to drain NATS connection"))
		s.nc.Close()
	}
}
