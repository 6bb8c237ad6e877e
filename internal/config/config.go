package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" validate:"required"`
	LogLevel  string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"LOG_FORMAT" validate:"oneof=json text"`

	ShutdownTimeout time.Duration

	// Forecast API configuration. A zero ForecastTimeout leaves the transport
	// default, a zero ForecastRateLimit disables rate limiting and a zero
	// ProbeInterval disables the upstream probe.
	ForecastBaseURL        string `env:"FORECAST_BASE_URL" validate:"required,url"`
	ForecastTimeout        time.Duration
	LookupDelay            time.Duration
	ForecastRateLimit      float64
	ForecastRateBurst      int
	ForecastBreakerEnabled bool
	ProbeInterval          time.Duration

	// Lookup event publishing; disabled when KafkaBrokers is empty.
	KafkaBrokers []string
	KafkaTopic   string

	IconClearURL        string `env:"ICON_CLEAR_URL" validate:"required,url"`
	IconPartlyCloudyURL string `env:"ICON_PARTLY_CLOUDY_URL" validate:"required,url"`
	IconFogURL          string `env:"ICON_FOG_URL" validate:"required,url"`
	IconRainURL         string `env:"ICON_RAIN_URL" validate:"required,url"`
	IconSnowURL         string `env:"ICON_SNOW_URL" validate:"required,url"`
	IconThunderstormURL string `env:"ICON_THUNDERSTORM_URL" validate:"required,url"`
}

// DefaultForecastBaseURL is the Open-Meteo forecast endpoint.
const DefaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures by environment variable name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s", false)
	if err != nil {
		return nil, err
	}
	forecastTimeout, err := parseDuration("FORECAST_TIMEOUT", "0s", true)
	if err != nil {
		return nil, err
	}
	lookupDelay, err := parseDuration("LOOKUP_DELAY", "500ms", true)
	if err != nil {
		return nil, err
	}
	probeInterval, err := parseDuration("PROBE_INTERVAL", "5m", true)
	if err != nil {
		return nil, err
	}
	rateLimit, err := parseFloat("FORECAST_RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}
	rateBurst, err := parseInt("FORECAST_RATE_BURST", 1)
	if err != nil {
		return nil, err
	}
	breakerEnabled, err := parseBool("FORECAST_BREAKER_ENABLED", false)
	if err != nil {
		return nil, err
	}

	icons := domain.DefaultIconSet()

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(envOrDefault("LOG_FORMAT", "json")),
		ShutdownTimeout: shutdownTimeout,

		ForecastBaseURL:        envOrDefault("FORECAST_BASE_URL", DefaultForecastBaseURL),
		ForecastTimeout:        forecastTimeout,
		LookupDelay:            lookupDelay,
		ForecastRateLimit:      rateLimit,
		ForecastRateBurst:      rateBurst,
		ForecastBreakerEnabled: breakerEnabled,
		ProbeInterval:          probeInterval,

		KafkaBrokers: parseList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "weather-lookups"),

		IconClearURL:        envOrDefault("ICON_CLEAR_URL", icons.Clear),
		IconPartlyCloudyURL: envOrDefault("ICON_PARTLY_CLOUDY_URL", icons.PartlyCloudy),
		IconFogURL:          envOrDefault("ICON_FOG_URL", icons.Fog),
		IconRainURL:         envOrDefault("ICON_RAIN_URL", icons.Rain),
		IconSnowURL:         envOrDefault("ICON_SNOW_URL", icons.Snow),
		IconThunderstormURL: envOrDefault("ICON_THUNDERSTORM_URL", icons.Thunderstorm),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid %s: failed %q check", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// EventsEnabled reports whether lookup events should be published to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Icons returns the configured icon set.
func (c *Config) Icons() domain.IconSet {
	return domain.IconSet{
		Clear:        c.IconClearURL,
		PartlyCloudy: c.IconPartlyCloudyURL,
		Fog:          c.IconFogURL,
		Rain:         c.IconRainURL,
		Snow:         c.IconSnowURL,
		Thunderstorm: c.IconThunderstormURL,
	}
}
