package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", SuggestionsLimit},
		{"10", 10},
		{"100", 100},
		{"101", SuggestionsLimit},
		{"0", SuggestionsLimit},
		{"-5", SuggestionsLimit},
		{"abc", SuggestionsLimit},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, clampLimit(tc.raw), tc.raw)
	}
}
