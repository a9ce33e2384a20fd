package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var signedIntRe = regexp.MustCompile(`^-?[0-9]+$`)

// NormalizeAmount converts a raw numeric token into its canonical form:
// no $, no whitespace, no comma/period group separators, parenthesized
// values negated, leading zeros dropped. Periods in these filings only
// ever group thousands, so they are stripped like commas.
func NormalizeAmount(raw string) (string, error) {
	v := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', '.', ' ', '\t':
			return -1
		}
		return r
	}, raw)

	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = v[1 : len(v)-1]
		if !strings.HasPrefix(v, "-") {
			v = "-" + v
		}
	}

	if !signedIntRe.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrMalformedValue, raw)
	}

	// decimal canonicalizes leading zeros and -0 for us.
	d, err := decimal.NewFromString(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedValue, raw)
	}
	return d.String(), nil
}
