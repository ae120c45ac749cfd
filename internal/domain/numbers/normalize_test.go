package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphens", "090-1234-5678", "09012345678"},
		{"spaces", "03 1234 5678", "0312345678"},
		{"parentheses", "(03) 1234-5678", "0312345678"},
		{"international plus", "+1-876-555-1234", "+18765551234"},
		{"already normalized", "09012345678", "09012345678"},
		{"mixed separators", "0120 - (999) 999", "0120999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"090-1234-5678", "+81 90 1234 5678", "110", "0570(000)111"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice diverged", in)
	}
}
