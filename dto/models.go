package dto

// FilingResults holds the normalized line-item figures extracted from
// one filing. All values are canonical decimal strings: no thousands
// separators, no currency markers, negatives prefixed with "-".
type FilingResults struct {
	Revenue     string `json:"revenue"`
	CostOfSales string `json:"cos"`
	GrossProfit string `json:"gross_profit"`
}
