package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server    Server         `mapstructure:"server"`
	Database  Database       `mapstructure:"database"`
	Redis     Redis          `mapstructure:"redis"`
	WebPush   WebPush        `mapstructure:"webpush"`
	Engine    Engine         `mapstructure:"engine"`
	Scheduler Scheduler      `mapstructure:"scheduler"`
	Retry     retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Database holds database master and slave configuration.
type Database struct {
	Master DatabaseNode   `mapstructure:"master"`
	Slaves []DatabaseNode `mapstructure:"slaves"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DatabaseNode holds connection parameters for a single database node.
type DatabaseNode struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"ssl_mode"`
}

// Redis holds Redis connection parameters.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// WebPush holds the VAPID signing material for the push transport.
// The key pair is required at run time; a run aborts without it.
type WebPush struct {
	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	Subscriber      string `mapstructure:"subscriber"` // contact mailto: for the push service
	TTL             int    `mapstructure:"ttl"`        // push service retention, seconds
}

// Engine holds reminder evaluation and dispatch tuning.
type Engine struct {
	UrgencyThresholdKm   int           `mapstructure:"urgency_threshold_km"`
	UrgencyThresholdDays int           `mapstructure:"urgency_threshold_days"`
	CooldownHours        int           `mapstructure:"cooldown_hours"`
	MaxInFlight          int64         `mapstructure:"max_in_flight"` // concurrent push deliveries per reminder
	SubscriptionCacheTTL time.Duration `mapstructure:"subscription_cache_ttl"`
	IconURL              string        `mapstructure:"icon_url"`
}

// Scheduler holds the optional in-process cron schedule.
// An empty spec disables the internal scheduler; an external one can still
// hit the HTTP trigger.
type Scheduler struct {
	Cron string `mapstructure:"cron"`
}

// DSN returns the PostgreSQL DSN string for connecting to this database node.
func (n DatabaseNode) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		n.User, n.Pass, n.Host, n.Port, n.Name, n.SSLMode,
	)
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"database.master.host": "DB_HOST",
		"database.master.port": "DB_PORT",
		"database.master.user": "DB_USER",
		"database.master.pass": "DB_PASSWORD",
		"database.master.name": "DB_NAME",

		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"webpush.vapid_public_key":  "VAPID_PUBLIC_KEY",
		"webpush.vapid_private_key": "VAPID_PRIVATE_KEY",
		"webpush.subscriber":        "VAPID_SUBSCRIBER",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// setDefaults registers the hardcoded engine defaults so a minimal config
// file still produces a working evaluation pipeline.
func setDefaults() {
	viper.SetDefault("engine.urgency_threshold_km", 1000)
	viper.SetDefault("engine.urgency_threshold_days", 15)
	viper.SetDefault("engine.cooldown_hours", 48)
	viper.SetDefault("engine.max_in_flight", 20)
	viper.SetDefault("engine.subscription_cache_ttl", 5*time.Minute)
	viper.SetDefault("webpush.ttl", 60)
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
