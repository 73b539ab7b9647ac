package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitPatterns tests comma-separated pattern parsing.
func TestSplitPatterns(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []string
	}{
		{"empty string", "", nil},
		{"single pattern", "*.go", []string{"*.go"}},
		{"multiple patterns", "*.go,*.md", []string{"*.go", "*.md"}},
		{"surrounding whitespace trimmed", " *.go , *.md ", []string{"*.go", "*.md"}},
		{"empty entries dropped", "*.go,,*.md,", []string{"*.go", "*.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitPatterns(tt.in))
		})
	}
}
