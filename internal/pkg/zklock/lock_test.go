package zklock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceOf(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"_c_4e0c-lock-0000000003", 3},
		{"lock-0000000010", 10},
		{"lock-0", 0},
		{"nodash", -1},
		{"lock-notanumber", -1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, sequenceOf(tt.name), tt.name)
	}
}
