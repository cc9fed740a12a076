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
	"github.com/feral-file/ff-revshare/internal/eligibility"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/messaging"
	"github.com/feral-file/ff-revshare/internal/providers/jetstream"
	"github.com/feral-file/ff-revshare/internal/revshare"
	"github.com/feral-file/ff-revshare/internal/scheduler"
	"github.com/feral-file/ff-revshare/internal/store"
	"github.com/feral-file/ff-revshare/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run one distribution round and one expiry batch, then exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
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
			"service": "revshare-scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Scheduler", zap.Bool("once", *once))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Initialize store and eligibility scanner
	dataStore := store.NewPGStore(db)
	scanner := eligibility.NewScanner(eligibility.Config{WorkerPoolSize: cfg.Eligibility.WorkerPoolSize}, dataStore, dataStore, dataStore)
	clock := adapter.NewClock()

	// Connect to NATS for revenue events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.ConnectionConfig{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, revenue events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Initialize revenue share service
	serviceConfig, err := cfg.Distribution.ServiceConfig()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid distribution config", zap.Error(err))
	}
	service, err := revshare.NewService(serviceConfig, dataStore, scanner, publisher, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize revenue share service", zap.Error(err))
	}

	// Register the distribution job
	manager, err := scheduler.NewManager()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create scheduler", zap.Error(err))
	}
	distributionJob := scheduler.NewDistributionJob(scheduler.DistributionJobConfig{
		Cron:               cfg.Distribution.Cron,
		MaxConflictRetries: cfg.DistributionJob.MaxConflictRetries,
		RetryInterval:      cfg.DistributionJob.RetryInterval,
	}, service)
	if err := manager.Register(distributionJob); err != nil {
		logger.FatalCtx(ctx, "Failed to register distribution job", zap.Error(err))
	}

	if *once {
		runOnce(ctx, manager, service, cfg.ExpirySweeper.BatchSize)
		return
	}

	// Initialize expiry sweeper
	expirySweeper := sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{
		BatchSize:    cfg.ExpirySweeper.BatchSize,
		Interval:     cfg.ExpirySweeper.Interval,
		MaxRetryTime: cfg.ExpirySweeper.MaxRetryTime,
	}, service, clock)

	manager.Start(ctx)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := expirySweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the jobs and the sweeper
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := manager.Stop(); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := expirySweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Scheduler stopped")
}

// runOnce runs the registered jobs and expires one batch of rounds
func runOnce(ctx context.Context, manager *scheduler.Manager, service revshare.Service, batchSize int) {
	if err := manager.RunNow(ctx); err != nil {
		logger.ErrorCtx(ctx, err)
	}

	expired, err := service.ExpireDistributions(ctx, batchSize)
	if err != nil {
		logger.ErrorCtx(ctx, err)
	}
	logger.InfoCtx(ctx, "One-shot run completed", zap.Int("expired_rounds", len(expired)))
}
