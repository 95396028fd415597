package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGreeting(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"plain name", "World", "Hello, World!"},
		{"empty string", "", "Hello, !"},
		{"special characters", "Bob & Alice <3", "Hello, Bob & Alice <3!"},
		{"unicode", "wörld", "Hello, wörld!"},
		{"whitespace preserved", "  spaced  ", "Hello,   spaced  !"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GetGreeting(tt.input)
			assert.Equal(t, tt.message, g.Message)
			assert.Equal(t, tt.input, g.Name)
		})
	}
}
