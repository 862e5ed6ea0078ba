package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/arzonstar",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("RunAddress = %q, want %q", cfg.RunAddress, defaultRunAddress)
	}
	if cfg.LogChannel != defaultLogChannel {
		t.Errorf("LogChannel = %q, want %q", cfg.LogChannel, defaultLogChannel)
	}
	if cfg.ReferralBonusPercent != defaultReferralBonusPercent {
		t.Errorf("ReferralBonusPercent = %d, want %d", cfg.ReferralBonusPercent, defaultReferralBonusPercent)
	}
	if cfg.BroadcastWorkers != defaultBroadcastWorkers {
		t.Errorf("BroadcastWorkers = %d, want %d", cfg.BroadcastWorkers, defaultBroadcastWorkers)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, defaultShutdownTimeout)
	}
}

func TestLoadMissingDatabaseURI(t *testing.T) {
	_, err := load(nil, lookupFrom(nil))
	if err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadFromEnv(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"RUN_ADDRESS":            ":9090",
		"DATABASE_URI":           "postgres://db/arzonstar",
		"TELEGRAM_BOT_TOKEN":     "123:abc",
		"ADMIN_TELEGRAM_ID":      "777",
		"LOG_CHANNEL":            "@OtherLog",
		"REFERRAL_BONUS_PERCENT": "5",
		"BROADCAST_WORKERS":      "8",
		"SHUTDOWN_TIMEOUT":       "30s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Errorf("RunAddress = %q", cfg.RunAddress)
	}
	if cfg.BotToken != "123:abc" {
		t.Errorf("BotToken = %q", cfg.BotToken)
	}
	if cfg.AdminTelegramID != "777" {
		t.Errorf("AdminTelegramID = %q", cfg.AdminTelegramID)
	}
	if cfg.LogChannel != "@OtherLog" {
		t.Errorf("LogChannel = %q", cfg.LogChannel)
	}
	if cfg.ReferralBonusPercent != 5 {
		t.Errorf("ReferralBonusPercent = %d", cfg.ReferralBonusPercent)
	}
	if cfg.BroadcastWorkers != 8 {
		t.Errorf("BroadcastWorkers = %d", cfg.BroadcastWorkers)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":7070", "-d", "postgres://flag/db", "-referral-bonus", "3", "-shutdown-timeout", "5s"},
		lookupFrom(map[string]string{
			"RUN_ADDRESS":  ":9090",
			"DATABASE_URI": "postgres://env/db",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Errorf("RunAddress = %q, want flag value", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/db" {
		t.Errorf("DatabaseURI = %q, want flag value", cfg.DatabaseURI)
	}
	if cfg.ReferralBonusPercent != 3 {
		t.Errorf("ReferralBonusPercent = %d", cfg.ReferralBonusPercent)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":           "postgres://db/arzonstar",
		"REFERRAL_BONUS_PERCENT": "not-a-number",
		"BROADCAST_WORKERS":      "-2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ReferralBonusPercent != defaultReferralBonusPercent {
		t.Errorf("ReferralBonusPercent = %d, want default", cfg.ReferralBonusPercent)
	}
	if cfg.BroadcastWorkers != defaultBroadcastWorkers {
		t.Errorf("BroadcastWorkers = %d, want default", cfg.BroadcastWorkers)
	}
}

func TestLoadBadFlag(t *testing.T) {
	_, err := load([]string{"-no-such-flag"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://db/arzonstar",
	}))
	if err == nil {
		t.Fatal("expected flag parse error")
	}
}
