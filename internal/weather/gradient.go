package weather

// Gradient is a two-color background token, e.g. "from-blue-400 to-cyan-500".
type Gradient string

const DefaultGradient Gradient = "from-blue-400 to-purple-500"

var gradients = map[Condition]Gradient{
	ConditionClear:        "from-blue-400 to-cyan-500",
	ConditionClouds:       "from-gray-400 to-blue-300",
	ConditionRain:         "from-gray-600 to-blue-700",
	ConditionSnow:         "from-blue-200 to-cyan-300",
	ConditionThunderstorm: "from-purple-600 to-blue-800",
	ConditionDrizzle:      "from-gray-500 to-blue-600",
	ConditionMist:         "from-gray-300 to-blue-400",
}

// GradientFor maps a condition category to its gradient. Unknown categories
// get DefaultGradient.
func GradientFor(c Condition) Gradient {
	if g, ok := gradients[c]; ok {
		return g
	}
	return DefaultGradient
}

// GradientForSnapshot is GradientFor with DefaultGradient for a nil snapshot.
func GradientForSnapshot(s *WeatherSnapshot) Gradient {
	if s == nil {
		return DefaultGradient
	}
	return GradientFor(s.Condition)
}
