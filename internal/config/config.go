package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	BotToken             string
	AdminTelegramID      string
	LogChannel           string
	ReferralBonusPercent int
	BroadcastWorkers     int
	ShutdownTimeout      time.Duration
	InitDataTTL          time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultLogChannel           = "@ArzonStarLog"
	defaultReferralBonusPercent = 2
	defaultBroadcastWorkers     = 4
	defaultShutdownTimeout      = 10 * time.Second
	defaultInitDataTTL          = 24 * time.Hour
)

// Load parses configuration from an optional .env file, environment variables
// and flags. Missing bot token or admin identity degrades notifications and
// admin derivation without failing startup.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		BotToken:             getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		AdminTelegramID:      getString(lookup, "ADMIN_TELEGRAM_ID", ""),
		LogChannel:           getString(lookup, "LOG_CHANNEL", defaultLogChannel),
		ReferralBonusPercent: getInt(lookup, "REFERRAL_BONUS_PERCENT", defaultReferralBonusPercent),
		BroadcastWorkers:     getInt(lookup, "BROADCAST_WORKERS", defaultBroadcastWorkers),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		InitDataTTL:          getDuration(lookup, "INIT_DATA_TTL", defaultInitDataTTL),
	}

	fs := flag.NewFlagSet("arzonstar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.BotToken, "bot-token", cfg.BotToken, "Telegram bot token for outbound notifications")
	fs.StringVar(&cfg.AdminTelegramID, "admin-id", cfg.AdminTelegramID, "Telegram ID granted the admin flag on upsert")
	fs.StringVar(&cfg.LogChannel, "log-channel", cfg.LogChannel, "Telegram channel receiving order/deposit notifications")
	fs.IntVar(&cfg.ReferralBonusPercent, "referral-bonus", cfg.ReferralBonusPercent, "Referrer bonus percent on approved deposits")
	fs.IntVar(&cfg.BroadcastWorkers, "broadcast-workers", cfg.BroadcastWorkers, "Number of concurrent broadcast senders")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ReferralBonusPercent < 0 {
		cfg.ReferralBonusPercent = defaultReferralBonusPercent
	}
	if cfg.BroadcastWorkers <= 0 {
		cfg.BroadcastWorkers = defaultBroadcastWorkers
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.InitDataTTL <= 0 {
		cfg.InitDataTTL = defaultInitDataTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
