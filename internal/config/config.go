package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Patrol   PatrolConfig   `json:"patrol"`
	Webhook  WebhookConfig  `json:"webhook"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type PatrolConfig struct {
	// DefaultRiskRadiusM applies to risk zones created without an explicit
	// radius. Checkpoints have their own fixed 50 m default.
	DefaultRiskRadiusM float64 `json:"default_risk_radius_m"`

	// StaleAfter is the breadcrumb age past which an on-duty officer is
	// considered stale. ActiveWindow is the breadcrumb age under which an
	// officer counts as active for stats. Same default, separate knobs.
	StaleAfter   time.Duration `json:"stale_after"`
	ActiveWindow time.Duration `json:"active_window"`

	EvalInterval     time.Duration `json:"eval_interval"`
	DefaultTimezone  string        `json:"default_timezone"`
	RecentSessionCap int           `json:"recent_session_cap"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

func Load(ctx context.Context) (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "patrolwatch_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Patrol: PatrolConfig{
			DefaultRiskRadiusM: getEnvFloat("PATROL_DEFAULT_RISK_RADIUS_M", 300),
			StaleAfter:         getEnvDuration("PATROL_STALE_AFTER", 5*time.Minute),
			ActiveWindow:       getEnvDuration("PATROL_ACTIVE_WINDOW", 5*time.Minute),
			EvalInterval:       getEnvDuration("PATROL_EVAL_INTERVAL", 30*time.Second),
			DefaultTimezone:    getEnv("PATROL_DEFAULT_TIMEZONE", "UTC"),
			RecentSessionCap:   getEnvInt("PATROL_RECENT_SESSION_CAP", 50),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Duration("stale_after", cfg.Patrol.StaleAfter),
	)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Patrol.DefaultRiskRadiusM <= 0 {
		return errors.New("PATROL_DEFAULT_RISK_RADIUS_M must be > 0")
	}
	if c.Patrol.StaleAfter <= 0 || c.Patrol.ActiveWindow <= 0 {
		return errors.New("PATROL_STALE_AFTER and PATROL_ACTIVE_WINDOW must be > 0")
	}
	if _, err := time.LoadLocation(c.Patrol.DefaultTimezone); err != nil {
		return errors.New("PATROL_DEFAULT_TIMEZONE must be a valid IANA name")
	}
	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		c.Webhook.Disabled = true
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
