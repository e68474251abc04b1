package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"mars", "Mars"},
		{"nice boulevard", "Nice Boulevard"},
		{"JUPITER", "Jupiter"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.in))
		})
	}
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("mars", "M"))
	assert.True(t, HasPrefixFold("Mercury", "m"))
	assert.False(t, HasPrefixFold("venus", "M"))
	assert.False(t, HasPrefixFold("", "M"))
	assert.True(t, HasPrefixFold("earth", ""))
}

func TestRuneLenAndDefault(t *testing.T) {
	assert.Equal(t, 2, RuneLen("你好"))
	assert.Equal(t, 4, RuneLen("mars"))
	assert.Equal(t, "def", DefaultStr("", "def"))
	assert.Equal(t, "v", DefaultStr("v", "def"))
}
