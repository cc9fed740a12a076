package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-revshare/internal/domain"
	"github.com/feral-file/ff-revshare/internal/revshare"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration.
// Event publishing is disabled when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration of the operator endpoints
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	JWTIssuer    string   `mapstructure:"jwt_issuer"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// DistributionConfig holds the parameters of distribution rounds
type DistributionConfig struct {
	// MinBalance is the vault balance below which no round is created, as a decimal string
	MinBalance   string        `mapstructure:"min_balance"`
	RoundTTL     time.Duration `mapstructure:"round_ttl"`
	ExpiryPolicy string        `mapstructure:"expiry_policy"`
	Cron         string        `mapstructure:"cron"`
}

// DistributionJobConfig holds configuration of the scheduled distribution job
type DistributionJobConfig struct {
	MaxConflictRetries uint64        `mapstructure:"max_conflict_retries"`
	RetryInterval      time.Duration `mapstructure:"retry_interval"`
}

// ExpirySweeperConfig holds configuration of the distribution expiry sweeper
type ExpirySweeperConfig struct {
	BatchSize    int           `mapstructure:"batch_size"`
	Interval     time.Duration `mapstructure:"interval"`
	MaxRetryTime time.Duration `mapstructure:"max_retry_time"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Distribution DistributionConfig `mapstructure:"distribution"`
	Eligibility  WorkerConfig       `mapstructure:"eligibility"`
}

// SchedulerConfig holds configuration for the scheduler program
type SchedulerConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Database        DatabaseConfig        `mapstructure:"database"`
	NATS            NATSConfig            `mapstructure:"nats"`
	Distribution    DistributionConfig    `mapstructure:"distribution"`
	Eligibility     WorkerConfig          `mapstructure:"eligibility"`
	DistributionJob DistributionJobConfig `mapstructure:"distribution_job"`
	ExpirySweeper   ExpirySweeperConfig   `mapstructure:"expiry_sweeper"`
}

// DepositConsumerConfig holds configuration for deposit-consumer
type DepositConsumerConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig     `mapstructure:"database"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Distribution DistributionConfig `mapstructure:"distribution"`
	Eligibility  WorkerConfig       `mapstructure:"eligibility"`
	Worker       WorkerConfig       `mapstructure:"worker"`
}

// MigrateConfig holds configuration for the migrate program
type MigrateConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setNATSDefaults(v, "revshare-api")
	setDistributionDefaults(v)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(&config.Database); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the scheduler program
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	setNATSDefaults(v, "revshare-scheduler")
	setDistributionDefaults(v)
	v.SetDefault("distribution_job.max_conflict_retries", 5)
	v.SetDefault("distribution_job.retry_interval", "1s")
	v.SetDefault("expiry_sweeper.batch_size", 50)
	v.SetDefault("expiry_sweeper.interval", "10m")
	v.SetDefault("expiry_sweeper.max_retry_time", "5m")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config SchedulerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(&config.Database); err != nil {
		return nil, err
	}
	if config.Distribution.Cron == "" {
		return nil, errors.New("distribution.cron is required")
	}

	return &config, nil
}

// LoadDepositConsumerConfig loads configuration for deposit-consumer
func LoadDepositConsumerConfig(configFile string, envPath string) (*DepositConsumerConfig, error) {
	v := configureViper("deposit-consumer", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v, "revshare-deposit-consumer")
	setDistributionDefaults(v)
	v.SetDefault("nats.consumer_name", "deposit-consumer")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("worker.pool_size", 4)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config DepositConsumerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(&config.Database); err != nil {
		return nil, err
	}
	if config.NATS.URL == "" {
		return nil, errors.New("nats.url is required")
	}

	return &config, nil
}

// LoadMigrateConfig loads configuration for the migrate program
func LoadMigrateConfig(configFile string, envPath string) (*MigrateConfig, error) {
	v := configureViper("migrate", configFile, envPath)

	setDatabaseDefaults(v)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config MigrateConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(&config.Database); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setNATSDefaults(v *viper.Viper, connectionName string) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "REVENUE_EVENTS")
	v.SetDefault("nats.connection_name", connectionName)
}

func setDistributionDefaults(v *viper.Viper) {
	v.SetDefault("distribution.min_balance", revshare.DefaultMinBalance)
	v.SetDefault("distribution.round_ttl", domain.DefaultRoundTTL.String())
	v.SetDefault("distribution.expiry_policy", string(domain.ExpiryPolicyRollover))
	v.SetDefault("distribution.cron", revshare.DefaultDistributionCron)
	v.SetDefault("eligibility.pool_size", 8)
}

// readInConfig reads the config file, falling back to environment variables when there is none
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func validateDatabase(c *DatabaseConfig) error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/scheduler/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("REVSHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.jwt_issuer",
		"auth.api_keys",
		// Distribution
		"distribution.min_balance",
		"distribution.round_ttl",
		"distribution.expiry_policy",
		"distribution.cron",
		"distribution_job.max_conflict_retries",
		"distribution_job.retry_interval",
		// Expiry sweeper
		"expiry_sweeper.batch_size",
		"expiry_sweeper.interval",
		"expiry_sweeper.max_retry_time",
		// Workers
		"eligibility.pool_size",
		"worker.pool_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServiceConfig converts the distribution parameters into the revenue share service configuration
func (c *DistributionConfig) ServiceConfig() (revshare.Config, error) {
	minBalance, err := decimal.NewFromString(strings.TrimSpace(c.MinBalance))
	if err != nil {
		return revshare.Config{}, fmt.Errorf("invalid distribution.min_balance %q: %w", c.MinBalance, err)
	}

	return revshare.Config{
		MinBalance:       &minBalance,
		RoundTTL:         c.RoundTTL,
		ExpiryPolicy:     domain.ExpiryPolicy(strings.ToLower(c.ExpiryPolicy)),
		DistributionCron: c.Cron,
	}, nil
}
