package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.OpenWeatherBaseURL)
	assert.Equal(t, "https://openweathermap.org/img/wn", cfg.OpenWeatherIconURL)
	assert.Equal(t, "metric", cfg.Units)
	assert.Equal(t, "London", cfg.DefaultCity)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 0, cfg.ProviderMaxRetries)
	assert.Equal(t, 30*time.Minute, cfg.SessionMaxAge)
	assert.Equal(t, 1000, cfg.SessionMaxCount)
	assert.Equal(t, 5*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "8080", cfg.Port)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("WEATHER_UNITS", "imperial")
	t.Setenv("DEFAULT_CITY", "Paris")
	t.Setenv("HTTP_TIMEOUT", "0")
	t.Setenv("PORT", "9090")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.OpenWeatherAPIKey)
	assert.Equal(t, "imperial", cfg.Units)
	assert.Equal(t, "Paris", cfg.DefaultCity)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.Port)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown units", "WEATHER_UNITS", "kelvin"},
		{"bad duration", "SESSION_MAX_AGE", "soon"},
		{"sweep too frequent", "SESSION_SWEEP_INTERVAL", "10s"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad port", "PORT", "http"},
		{"bad base url", "OPENWEATHER_BASE_URL", "not a url"},
		{"too many retries", "PROVIDER_MAX_RETRIES", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
