package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Ravi Kumar", 20, "Ravi Kumar"},
		{"Ravi Kumar", 7, "Ravi..."},
		{"Ravi Kumar", 2, "Ra"},
		{"रवि कुमार", 5, "रव..."},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.max), "%q/%d", tt.in, tt.max)
	}
}

func TestRenderPage(t *testing.T) {
	out := renderPage("POLICY DESK", "", "esc: back")

	assert.Contains(t, out, "POLICY DESK")
	assert.Contains(t, out, "  -")
	assert.Contains(t, out, "esc: back")
	assert.Contains(t, out, "ctrl+c: quit")
}
