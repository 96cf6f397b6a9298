package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCity(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"   ":            "",
		"\t\n":           "",
		"Paris":          "Paris",
		"  Paris  ":      "Paris",
		"New   York":     "New York",
		" São\tPaulo ":   "São Paulo",
		"Rio de Janeiro": "Rio de Janeiro",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeCity(in), "input %q", in)
	}
}
