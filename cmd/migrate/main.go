package main

import (
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-revshare/internal/config"
	"github.com/feral-file/ff-revshare/internal/logger"
	"github.com/feral-file/ff-revshare/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	status     = flag.Bool("status", false, "Print the applied migration version without migrating")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "revshare-migrate",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if !*status {
		logger.Info("Applying migrations", zap.String("host", cfg.Database.Host), zap.String("dbname", cfg.Database.DBName))
		if err := store.Migrate(cfg.Database.DSN()); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	version, err := store.MigrationVersion(cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to read migration version", zap.Error(err))
	}
	logger.Info("Database schema is up to date", zap.Int64("version", version))
}
