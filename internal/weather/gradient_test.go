package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientFor(t *testing.T) {
	tests := []struct {
		condition Condition
		want      Gradient
	}{
		{ConditionClear, "from-blue-400 to-cyan-500"},
		{ConditionClouds, "from-gray-400 to-blue-300"},
		{ConditionRain, "from-gray-600 to-blue-700"},
		{ConditionSnow, "from-blue-200 to-cyan-300"},
		{ConditionThunderstorm, "from-purple-600 to-blue-800"},
		{ConditionDrizzle, "from-gray-500 to-blue-600"},
		{ConditionMist, "from-gray-300 to-blue-400"},
		{"Haze", DefaultGradient},
		{"clear", DefaultGradient},
		{"", DefaultGradient},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			assert.Equal(t, tt.want, GradientFor(tt.condition))
			assert.Equal(t, tt.want, GradientFor(tt.condition), "must be deterministic")
		})
	}
}

func TestGradientForSnapshot(t *testing.T) {
	assert.Equal(t, DefaultGradient, GradientForSnapshot(nil))
	assert.Equal(t, GradientFor(ConditionClear), GradientForSnapshot(&WeatherSnapshot{Condition: ConditionClear}))
}

func TestWeatherSnapshot_IconURL(t *testing.T) {
	s := WeatherSnapshot{Icon: "04d"}
	assert.Equal(t, "https://openweathermap.org/img/wn/04d@4x.png", s.IconURL(""))
	assert.Equal(t, "http://icons.test/04d@4x.png", s.IconURL("http://icons.test/"))
	assert.Empty(t, WeatherSnapshot{}.IconURL(""))
}

func TestLookupError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewLookupError(FailureTransport, cause)

	assert.ErrorIs(t, err, ErrCityNotFound)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, FailureTransport, FailureKindOf(err))
	assert.Contains(t, err.Error(), "transport")

	status := &LookupError{Kind: FailureStatus, StatusCode: 401, Err: errors.New("invalid key")}
	assert.Contains(t, status.Error(), "401")

	assert.Equal(t, FailureTransport, FailureKindOf(errors.New("plain")))
}
