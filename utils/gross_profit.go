package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComputeGrossProfit returns revenue - cos as a canonical decimal
// string. The subtraction is exact; no binary floating point is
// involved. Trailing fractional zeros are stripped from the result.
func ComputeGrossProfit(revenue, cos string) (string, error) {
	r, err := decimal.NewFromString(revenue)
	if err != nil {
		return "", fmt.Errorf("invalid revenue value %q: %w", revenue, err)
	}
	c, err := decimal.NewFromString(cos)
	if err != nil {
		return "", fmt.Errorf("invalid cost of sales value %q: %w", cos, err)
	}
	return r.Sub(c).String(), nil
}
