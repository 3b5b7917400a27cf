package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Хранилище: postgres:// DSN или путь к файлу SQLite.
	DatabaseDSN string `env:"DATABASE_URI"`

	// HTTP-сервер
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"`

	// Коллаборатор распознавания чеков
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiAPIURL string `env:"GEMINI_API_URL"`

	// Периодичность сводки по напоминаниям. 0 — сводки выключены.
	DigestInterval time.Duration `env:"DIGEST_INTERVAL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или путь к SQLite)")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.StringVar(&cfg.GeminiAPIKey, "gemini-key", cfg.GeminiAPIKey, "ключ Gemini API для распознавания чеков")
	flag.StringVar(&cfg.GeminiAPIURL, "gemini-url", cfg.GeminiAPIURL, "эндпоинт Gemini API (по умолчанию generateContent)")
	flag.DurationVar(&cfg.DigestInterval, "digest-interval", cfg.DigestInterval, "период сводки по напоминаниям (0 — выключено)")

	flag.Parse()

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
