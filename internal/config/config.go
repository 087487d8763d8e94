package config

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultDatabaseURL     = "receiptor.db"
	defaultNagerBaseURL    = "https://date.nager.at/api/v3"
	defaultHolidaySyncSpec = "0 3 * * *"
	defaultTimezone        = "Europe/Luxembourg"
)

var ErrMissingToken = errors.New("TELEGRAM_BOT_TOKEN is not set")

type BotConfig struct {
	TelegramToken   string
	TelegramDebug   bool
	BaseAdminChatID int64
	DatabaseURL     string

	NagerBaseURL    string
	NagerTimeout    time.Duration
	HolidayFile     string
	HolidaySyncSpec string

	LogLevel logrus.Level
	Location *time.Location
}

var instance *BotConfig
var once sync.Once

// GetBotConfig loads the configuration once and exits the process when it is unusable.
func GetBotConfig() *BotConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Warnf("no .env file loaded, using process environment: %s", err.Error())
		}

		cfg, err := Load()
		if err != nil {
			logrus.Fatalf("could not load config: %s", err.Error())
		}
		instance = cfg
	})

	return instance
}

// Load reads the configuration from the process environment.
func Load() (*BotConfig, error) {
	cfg := &BotConfig{
		TelegramToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramDebug:   getEnvAsBool("TELEGRAM_DEBUG", false),
		BaseAdminChatID: getEnvAsInt("BASE_ADMIN_CHAT_ID", 0),
		DatabaseURL:     getEnv("DATABASE_URL", defaultDatabaseURL),
		NagerBaseURL:    getEnv("NAGER_BASE_URL", defaultNagerBaseURL),
		NagerTimeout:    time.Duration(getEnvAsInt("NAGER_TIMEOUT_SECONDS", 10)) * time.Second,
		HolidayFile:     getEnv("HOLIDAY_FILE", ""),
		HolidaySyncSpec: getEnv("HOLIDAY_SYNC_CRON", defaultHolidaySyncSpec),
		LogLevel:        logrus.InfoLevel,
	}

	if cfg.TelegramToken == "" {
		return nil, ErrMissingToken
	}

	if cfg.NagerTimeout <= 0 {
		return nil, errors.New("NAGER_TIMEOUT_SECONDS must be positive")
	}

	if raw := getEnv("LOG_LEVEL", ""); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", defaultTimezone))
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
