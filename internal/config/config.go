package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrNoTransportEnabled          = errors.New("no transport enabled")
	ErrUnknownStoreDriver          = errors.New("unknown session store driver")
)

// Session store drivers.
const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env        string   `mapstructure:"env"`         // current application environment (local, dev, production etc)
	ArchiveDir string   `mapstructure:"archive_dir"` // directory with KOI8-R question archive files
	Workers    int      `mapstructure:"workers"`     // max events handled concurrently per transport
	Telegram   Telegram `mapstructure:"telegram"`
	VK         VK       `mapstructure:"vk"`
	Store      Store    `mapstructure:"store"`
	Redis      Redis    `mapstructure:"redis"`
	DB         DB       `mapstructure:"database"`
	SQLite     SQLite   `mapstructure:"sqlite"`
	HTTP       HTTP     `mapstructure:"http"`
	Monitor    Monitor  `mapstructure:"monitor"`
}

// Telegram contains Telegram bot settings.
type Telegram struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"-"` // loaded from TELEGRAM_TOKEN
	Debug   bool   `mapstructure:"debug"`
}

// VK contains VK community bot settings.
type VK struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"-"` // loaded from VK_TOKEN
	GroupID int    `mapstructure:"group_id"`
}

// Store selects the session store backend.
type Store struct {
	Driver    string `mapstructure:"driver"`     // redis, postgres, sqlite or memory
	KeyPrefix string `mapstructure:"key_prefix"` // prepended to redis keys
}

// Redis contains Redis connection parameters.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"-"` // loaded from REDIS_PASSWORD
	DB       int    `mapstructure:"db"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// SQLite contains the embedded database location.
type SQLite struct {
	DSN string `mapstructure:"dsn"`
}

// HTTP contains the ops server settings.
type HTTP struct {
	Addr string `mapstructure:"addr"`
}

// Monitor contains the store health check schedule.
type Monitor struct {
	Schedule string `mapstructure:"schedule"` // cron spec, e.g. "@every 1m"
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files, .env and environment variables.
func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("archive_dir", "questions_archive")
	v.SetDefault("workers", 16)
	v.SetDefault("telegram.enabled", true)
	v.SetDefault("vk.enabled", false)
	v.SetDefault("store.driver", DriverRedis)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("sqlite.dsn", "file:quiz.db")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("monitor.schedule", "@every 1m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_token", "TELEGRAM_TOKEN")
	_ = v.BindEnv("vk_token", "VK_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.username", "REDIS_USERNAME")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	// Load sensitive values from environment variables.
	cfg.Telegram.Token = v.GetString("telegram_token")
	cfg.VK.Token = v.GetString("vk_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.Password = v.GetString("redis_password")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that enabled components have what they need.
func (c *Config) Validate() error {
	if !c.Telegram.Enabled && !c.VK.Enabled {
		return ErrNoTransportEnabled
	}
	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return fmt.Errorf("%w: TELEGRAM_TOKEN", ErrMissingEnvironmentVariables)
	}
	if c.VK.Enabled && c.VK.Token == "" {
		return fmt.Errorf("%w: VK_TOKEN", ErrMissingEnvironmentVariables)
	}

	switch c.Store.Driver {
	case DriverRedis, DriverSQLite, DriverMemory:
	case DriverPostgres:
		if _, err := c.DB.DSN(); err != nil {
			return fmt.Errorf("%w: DATABASE_URL", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.Store.Driver)
	}

	return nil
}
