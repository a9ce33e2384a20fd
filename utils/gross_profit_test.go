package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGrossProfit(t *testing.T) {
	got, err := ComputeGrossProfit("307394", "133332")
	require.NoError(t, err)
	assert.Equal(t, "174062", got)

	got, err = ComputeGrossProfit("350018", "146306")
	require.NoError(t, err)
	assert.Equal(t, "203712", got)
}

func TestComputeGrossProfitNegativeCost(t *testing.T) {
	got, err := ComputeGrossProfit("1000", "-200")
	require.NoError(t, err)
	assert.Equal(t, "1200", got)
}

func TestComputeGrossProfitStripsTrailingZeros(t *testing.T) {
	got, err := ComputeGrossProfit("1000.00", "200.50")
	require.NoError(t, err)
	assert.Equal(t, "799.5", got)
}

func TestComputeGrossProfitZero(t *testing.T) {
	got, err := ComputeGrossProfit("0", "0")
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}

func TestComputeGrossProfitInvalidInput(t *testing.T) {
	_, err := ComputeGrossProfit("10x", "5")
	assert.Error(t, err)

	_, err = ComputeGrossProfit("10", "")
	assert.Error(t, err)
}
