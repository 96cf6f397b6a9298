package weather

import "strings"

// Condition is the provider's coarse weather category (weather[0].main).
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionMist         Condition = "Mist"
)

// DefaultIconBaseURL is where provider icon codes are resolved to images.
const DefaultIconBaseURL = "https://openweathermap.org/img/wn"

// WeatherSnapshot is the normalized, display-ready result of the most recent
// successful lookup. It is replaced as a whole, never merged.
type WeatherSnapshot struct {
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Temperature int       `json:"temperature"` // floored
	FeelsLike   int       `json:"feelsLike"`   // floored
	Humidity    int       `json:"humidity"`    // percent
	WindSpeed   float64   `json:"windSpeed"`   // m/s in metric units
	Pressure    int       `json:"pressure"`    // hPa
	Visibility  float64   `json:"visibility"`  // km
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// IconURL returns the 4x icon image for the snapshot, or "" without an icon.
func (s WeatherSnapshot) IconURL(base string) string {
	if s.Icon == "" {
		return ""
	}
	if base == "" {
		base = DefaultIconBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + s.Icon + "@4x.png"
}
