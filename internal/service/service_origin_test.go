package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginGate_Allow(t *testing.T) {
	gate := NewOriginGate([]string{"http://localhost:3000", "https://webserviceweb.onrender.com"})

	tests := []struct {
		origin string
		want   bool
	}{
		{origin: "", want: true},
		{origin: "http://localhost:3000", want: true},
		{origin: "https://webserviceweb.onrender.com", want: true},
		{origin: "https://webserviceweb.onrender.com/", want: false},
		{origin: "http://localhost:3001", want: false},
		{origin: "HTTP://LOCALHOST:3000", want: false},
		{origin: "https://evil.example", want: false},
		{origin: "null", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Allow(tt.origin))
		})
	}
}

func TestOriginGate_EmptyAllowlist(t *testing.T) {
	gate := NewOriginGate(nil)

	assert.True(t, gate.Allow(""))
	assert.False(t, gate.Allow("http://localhost:3000"))
}
