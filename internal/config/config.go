package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	OpenWeatherAPIKey  string `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather" validate:"required,url"`
	OpenWeatherIconURL string `envconfig:"OPENWEATHER_ICON_URL" default:"https://openweathermap.org/img/wn" validate:"required,url"`

	// Units is passed through to the provider as the "units" query parameter.
	Units string `envconfig:"WEATHER_UNITS" default:"metric" validate:"oneof=metric imperial standard"`

	// DefaultCity is looked up once when a new widget session is mounted.
	DefaultCity string `envconfig:"DEFAULT_CITY" default:"London" validate:"required"`

	// HTTPTimeout bounds outbound provider calls (0 = no timeout).
	HTTPTimeout        time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gte=0"`
	ProviderMaxRetries int           `envconfig:"PROVIDER_MAX_RETRIES" default:"0" validate:"gte=0,lte=5"`

	// Widget sessions.
	SessionMaxAge        time.Duration `envconfig:"SESSION_MAX_AGE" default:"30m" validate:"gt=0"`
	SessionMaxCount      int           `envconfig:"SESSION_MAX_COUNT" default:"1000" validate:"gte=0"` // 0 = unlimited
	SessionSweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m" validate:"gte=1m"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`

	Port string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
}

var validate = validator.New()

// Load reads configuration from .env (if present) and the environment,
// applying defaults and validating the result.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	return FromEnv()
}

// FromEnv is Load without the .env step.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
