package weather

import "context"

// Provider abstracts the current-conditions data source (OpenWeatherMap).
// Implementations return a *LookupError on failure.
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (WeatherSnapshot, error)
}
