package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"tgkit/pkg/errors"
)

type Config struct {
	App      AppConfig
	Telegram TelegramConfig
	Warnings WarningsConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"tgkit"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type TelegramConfig struct {
	BotToken    string `envconfig:"TELEGRAM_BOT_TOKEN"`
	APIEndpoint string `envconfig:"TELEGRAM_API_ENDPOINT"`
	DemoChatID  int64  `envconfig:"TELEGRAM_DEMO_CHAT_ID"`
}

type WarningsConfig struct {
	// Suppress silences deprecation warnings entirely
	Suppress bool `envconfig:"WARNINGS_SUPPRESS" default:"false"`
}

type MetricsConfig struct {
	// Addr enables the /metrics endpoint when non-empty (e.g. ":9090")
	Addr string `envconfig:"METRICS_ADDR"`
}

func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
