package config

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, defaultDatabaseURL)
	}
	if cfg.NagerBaseURL != defaultNagerBaseURL {
		t.Errorf("NagerBaseURL = %q, want %q", cfg.NagerBaseURL, defaultNagerBaseURL)
	}
	if cfg.NagerTimeout != 10*time.Second {
		t.Errorf("NagerTimeout = %v, want 10s", cfg.NagerTimeout)
	}
	if cfg.HolidaySyncSpec != defaultHolidaySyncSpec {
		t.Errorf("HolidaySyncSpec = %q, want %q", cfg.HolidaySyncSpec, defaultHolidaySyncSpec)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.BaseAdminChatID != 0 {
		t.Errorf("BaseAdminChatID = %d, want 0", cfg.BaseAdminChatID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_DEBUG", "true")
	t.Setenv("BASE_ADMIN_CHAT_ID", "987654321")
	t.Setenv("DATABASE_URL", "/tmp/test.db")
	t.Setenv("NAGER_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIMEZONE", "Europe/Brussels")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if !cfg.TelegramDebug {
		t.Error("TelegramDebug = false, want true")
	}
	if cfg.BaseAdminChatID != 987654321 {
		t.Errorf("BaseAdminChatID = %d, want 987654321", cfg.BaseAdminChatID)
	}
	if cfg.DatabaseURL != "/tmp/test.db" {
		t.Errorf("DatabaseURL = %q, want /tmp/test.db", cfg.DatabaseURL)
	}
	if cfg.NagerTimeout != 3*time.Second {
		t.Errorf("NagerTimeout = %v, want 3s", cfg.NagerTimeout)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.Location.String() != "Europe/Brussels" {
		t.Errorf("Location = %v, want Europe/Brussels", cfg.Location)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		is   error
	}{
		{
			name: "missing token",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": ""},
			is:   ErrMissingToken,
		},
		{
			name: "bad log level",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "x", "LOG_LEVEL": "loud", "TIMEZONE": "UTC"},
		},
		{
			name: "bad timezone",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "x", "TIMEZONE": "Mars/Olympus"},
		},
		{
			name: "zero timeout",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "x", "NAGER_TIMEOUT_SECONDS": "0", "TIMEZONE": "UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Load() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "42")
	t.Setenv("CFG_TEST_BAD_INT", "forty-two")
	t.Setenv("CFG_TEST_BOOL", "1")

	if got := getEnvAsInt("CFG_TEST_INT", 7); got != 42 {
		t.Errorf("getEnvAsInt(existing) = %d, want 42", got)
	}
	if got := getEnvAsInt("CFG_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvAsInt(bad) = %d, want 7", got)
	}
	if got := getEnvAsBool("CFG_TEST_BOOL", false); !got {
		t.Error("getEnvAsBool(\"1\") = false, want true")
	}
	if got := getEnv("CFG_TEST_UNSET_VAR", "fallback"); got != "fallback" {
		t.Errorf("getEnv(unset) = %q, want fallback", got)
	}
}
