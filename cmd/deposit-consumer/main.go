package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-revshare/internal/adapter"
	"github.com/feral-file/ff-revshare/internal/config"
	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/eligibility"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/messaging"
	"github.com/feral-file/ff-revshare/internal/providers/jetstream"
	"github.com/feral-file/ff-revshare/internal/revshare"
	"github.com/feral-file/ff-revshare/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadDepositConsumerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "revshare-deposit-consumer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Deposit Consumer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	scanner := eligibility.NewScanner(eligibility.Config{WorkerPoolSize: cfg.Eligibility.WorkerPoolSize}, dataStore, dataStore, dataStore)
	natsJS := adapter.NewNatsJetStream()
	connection := jetstream.ConnectionConfig{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}

	// Confirmed deposits are published like the ones received over HTTP
	publisher, err := jetstream.NewPublisher(ctx, connection, natsJS)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	subscriber, err := jetstream.NewSubscriber(ctx, jetstream.SubscriberConfig{
		ConnectionConfig: connection,
		ConsumerName:     cfg.NATS.ConsumerName,
		AckWaitTimeout:   cfg.NATS.AckWait,
		MaxDeliver:       cfg.NATS.MaxDeliver,
		WorkerPoolSize:   cfg.Worker.WorkerPoolSize,
	}, natsJS)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS subscriber", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer subscriber.Close()
	logger.InfoCtx(ctx, "Connected to NATS",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName),
	)

	// Initialize revenue share service
	serviceConfig, err := cfg.Distribution.ServiceConfig()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid distribution config", zap.Error(err))
	}
	service, err := revshare.NewService(serviceConfig, dataStore, scanner, publisher, adapter.NewClock())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize revenue share service", zap.Error(err))
	}

	// Run the consumer in a goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- subscriber.Run(ctx, depositHandler(service))
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil {
			logger.ErrorCtx(ctx, err)
		}
		cancel()
	}

	logger.Info("Deposit consumer stopped")
}

// depositHandler applies a deposit request through the revenue share service
func depositHandler(service revshare.Service) messaging.DepositHandler {
	return func(ctx context.Context, request *domain.DepositRequest) error {
		amount, err := domain.ParseAmount(request.Amount)
		if err != nil {
			return err
		}

		_, err = service.Deposit(ctx, revshare.DepositInput{
			Amount:      amount,
			Source:      request.Source,
			SourceID:    request.SourceID,
			Description: request.Description,
			TxReference: request.TxReference,
			Metadata:    request.Metadata,
		})
		return err
	}
}
