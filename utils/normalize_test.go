package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"$ 146,306", "146306"},
		{"307 , 394", "307394"},
		{"(123)", "-123"},
		{"( 1,234 )", "-1234"},
		{"$(123)", "-123"},
		{"1.234.567", "1234567"},
		{"0012", "12"},
		{"(0)", "0"},
		{"5000", "5000"},
	}

	for _, tc := range cases {
		got, err := NormalizeAmount(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestNormalizeAmountRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "12x4", "(123", "--5", "$"} {
		_, err := NormalizeAmount(raw)
		assert.ErrorIs(t, err, ErrMalformedValue, "raw=%q", raw)
	}
}
