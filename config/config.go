package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Поддерживаемые источники данных о турнирах.
const (
	SourceBundled  = "bundled"
	SourceFile     = "file"
	SourceR2       = "r2"
	SourcePostgres = "postgres"
)

var ErrUnknownSource = errors.New("unknown tournament data source")

// Config хранит все конфигурационные параметры сервера.
type Config struct {
	ServerPort int    `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	DataSource string `env:"DATA_SOURCE" envDefault:"bundled"`
	DataFile   string `env:"DATA_FILE"`

	DatabaseURL string `env:"DATABASE_URL"`

	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2ObjectKey       string `env:"R2_OBJECT_KEY" envDefault:"tournaments.json"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Ошибку не считаем фатальной: .env может отсутствовать
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.DataSource {
	case SourceBundled:
	case SourceFile:
		if c.DataFile == "" {
			return errors.New("DATA_FILE environment variable is required for DATA_SOURCE=file")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL environment variable is required for DATA_SOURCE=postgres")
		}
	case SourceR2:
		var missing []string
		for name, value := range map[string]string{
			"R2_ACCOUNT_ID":        c.R2AccountID,
			"R2_ACCESS_KEY_ID":     c.R2AccessKeyID,
			"R2_SECRET_ACCESS_KEY": c.R2SecretAccessKey,
			"R2_BUCKET_NAME":       c.R2BucketName,
			"R2_OBJECT_KEY":        c.R2ObjectKey,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("DATA_SOURCE=r2 requires %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.DataSource)
	}

	if len(c.AllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must not be empty")
	}
	return nil
}

// ParseLogLevel понимает debug, info, warn и error.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	return l, nil
}
