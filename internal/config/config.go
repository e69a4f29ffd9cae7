package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL       = "https://toma92.myarena.site"
	DefaultWatermarkFile = "data.json"
	DefaultPollInterval  = 3 * time.Second
	DefaultSendInterval  = time.Second
	DefaultFetchTimeout  = 10 * time.Second
	DefaultHTTPAddr      = ":8080"
)

// Config holds application configuration
type Config struct {
	Token      string
	GroupID    int64
	LiveChatID int

	BaseURL       string
	WatermarkFile string
	PollInterval  time.Duration
	SendInterval  time.Duration
	FetchTimeout  time.Duration

	HTTPAddr     string // empty disables the status server
	RabbitMQURL  string // empty disables the broker sink
	OTELEndpoint string

	LogLevel    string
	LogFormat   string
	LogFile     string
	Environment string // development, staging, production
}

// Load reads .env (if present) and the process environment. Only parse
// errors are reported here; call Validate before starting the relay.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		Token:         os.Getenv("TOKEN"),
		BaseURL:       getEnv("BASE_URL", DefaultBaseURL),
		WatermarkFile: getEnv("WATERMARK_FILE", DefaultWatermarkFile),
		HTTPAddr:      DefaultHTTPAddr,
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		OTELEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		LogFile:       os.Getenv("LOG_FILE"),
		Environment:   getEnv("ENVIRONMENT", "development"),
	}

	// Production logs are always machine readable.
	if cfg.IsProduction() {
		cfg.LogFormat = "json"
	}

	if addr, ok := os.LookupEnv("HTTP_ADDR"); ok {
		cfg.HTTPAddr = addr
	}

	var errs []error

	if v := os.Getenv("GROUP_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("GROUP_ID: %w", err))
		}
		cfg.GroupID = id
	}

	if v := os.Getenv("LIVE_CHAT_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LIVE_CHAT_ID: %w", err))
		}
		cfg.LiveChatID = id
	}

	var err error
	if cfg.PollInterval, err = getDuration("POLL_INTERVAL", DefaultPollInterval); err != nil {
		errs = append(errs, err)
	}
	if cfg.SendInterval, err = getDuration("SEND_INTERVAL", DefaultSendInterval); err != nil {
		errs = append(errs, err)
	}
	if cfg.FetchTimeout, err = getDuration("FETCH_TIMEOUT", DefaultFetchTimeout); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// Validate checks the settings the relay cannot start without
func (c *Config) Validate() error {
	var errs []error

	if c.Token == "" {
		errs = append(errs, errors.New("TOKEN must be set"))
	}
	if c.GroupID == 0 {
		errs = append(errs, errors.New("GROUP_ID must be set"))
	}
	if c.LiveChatID == 0 {
		errs = append(errs, errors.New("LIVE_CHAT_ID must be set"))
	}
	if c.PollInterval <= 0 || c.SendInterval <= 0 || c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("intervals and timeouts must be positive"))
	}

	return errors.Join(errs...)
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
