package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-widget/internal/weather"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultUnits       = "metric"
)

var validate = validator.New()

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	units   string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// OpenWeatherOption customizes an OpenWeatherProvider.
type OpenWeatherOption func(*OpenWeatherProvider)

// WithBaseURL points the provider at a different endpoint.
func WithBaseURL(u string) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithUnits sets the "units" query parameter (metric, imperial, standard).
func WithUnits(units string) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		if units != "" {
			p.units = units
		}
	}
}

// WithRetries enables exponential backoff between attempts.
func WithRetries(maxRetries int) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		p.httpCfg.Backoff.MaxRetries = maxRetries
	}
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...OpenWeatherOption) *OpenWeatherProvider {
	p := &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: OpenWeatherBaseURL,
		units:   defaultUnits,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      0,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newCircuitBreaker("openweather"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// requestURL builds the query with url.Values so that city names containing
// spaces or reserved characters are percent-encoded.
func (p *OpenWeatherProvider) requestURL(city string) string {
	values := url.Values{}
	values.Set("q", city)
	values.Set("units", p.units)
	values.Set("appid", p.apiKey)

	return fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
}

type owmPayload struct {
	Name string `json:"name"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main" validate:"required"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind" validate:"required"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Main        string `json:"main" validate:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather" validate:"required,min=1,dive"`
	Visibility float64 `json:"visibility"` // meters
}

// Current fetches current conditions for city.
func (p *OpenWeatherProvider) Current(ctx context.Context, city string) (weather.WeatherSnapshot, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, p.requestURL(city), nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return weather.WeatherSnapshot{}, &weather.LookupError{
				Kind:       weather.FailureStatus,
				StatusCode: se.StatusCode,
				Err:        err,
			}
		}
		return weather.WeatherSnapshot{}, weather.NewLookupError(weather.FailureTransport, err)
	}
	defer resp.Body.Close()

	var payload owmPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherSnapshot{}, weather.NewLookupError(weather.FailureDecode, err)
	}

	if err := validate.Struct(payload); err != nil {
		return weather.WeatherSnapshot{}, weather.NewLookupError(weather.FailureDecode, fmt.Errorf("unexpected payload shape: %w", err))
	}

	return normalize(payload), nil
}

func normalize(p owmPayload) weather.WeatherSnapshot {
	cond := p.Weather[0]

	return weather.WeatherSnapshot{
		Location:    p.Name,
		Country:     p.Sys.Country,
		Temperature: int(math.Floor(p.Main.Temp)),
		FeelsLike:   int(math.Floor(p.Main.FeelsLike)),
		Humidity:    p.Main.Humidity,
		WindSpeed:   p.Wind.Speed,
		Pressure:    p.Main.Pressure,
		Visibility:  p.Visibility / 1000,
		Condition:   weather.Condition(cond.Main),
		Description: cond.Description,
		Icon:        cond.Icon,
	}
}
