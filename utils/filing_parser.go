package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field names reported in extraction errors and echoed by the HTTP layer.
const (
	FieldRevenue     = "revenue"
	FieldCostOfSales = "cos"
)

// lookaheadLines bounds how far below a label line the resolver scans
// when the label line itself carries no usable value.
const lookaheadLines = 12

var (
	revenueLabelRe     = regexp.MustCompile(`(?i)\bRevenues?\b`)
	costOfSalesLabelRe = regexp.MustCompile(`(?i)\bCost\s+of\s+(?:Sales|Revenues?)\b`)

	// A numeric token: optional $ and/or opening paren, digits with
	// comma/period group separators (spaces allowed only next to a
	// separator, so "307 , 394" is one token but "2023 2022" is two),
	// optional closing paren.
	numberRe = regexp.MustCompile(`(?:\$\s*)?\(?\s*(?:\$\s*)?[0-9](?:[0-9]|\s*[.,]\s*[0-9])*(?:\s*\))?`)
)

var (
	ErrLabelNotFound    = errors.New("label not found in document")
	ErrValueNotResolved = errors.New("no value found on or below the label line")
	ErrMalformedValue   = errors.New("value is not a valid number")
)

// FieldError reports why a single field could not be extracted.
type FieldError struct {
	Field string
	Raw   string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%s: %v (%q)", e.Field, e.Err, e.Raw)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ExtractionError aggregates the per-field failures of one extraction
// call. Revenue and cost of sales resolve independently, so both may be
// reported together.
type ExtractionError struct {
	Fields []*FieldError
}

func (e *ExtractionError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "could not extract: " + strings.Join(names, ", ")
}

// FilingFigures holds the normalized line-item values pulled from a
// filing's text layer.
type FilingFigures struct {
	Revenue     string
	CostOfSales string
}

// ExtractFilingFigures scans the plain-text dump of a 10-K filing for
// the Revenue and Cost of Sales line items and returns their normalized
// values. The scan is pure and stateless; on failure the returned error
// is an *ExtractionError naming every field that could not be resolved.
func ExtractFilingFigures(text string) (FilingFigures, error) {
	lines := splitLines(text)

	var figures FilingFigures
	var extErr ExtractionError

	if v, ferr := resolveField(lines, revenueLabelRe, FieldRevenue); ferr != nil {
		extErr.Fields = append(extErr.Fields, ferr)
	} else {
		figures.Revenue = v
	}

	if v, ferr := resolveField(lines, costOfSalesLabelRe, FieldCostOfSales); ferr != nil {
		extErr.Fields = append(extErr.Fields, ferr)
	} else {
		figures.CostOfSales = v
	}

	if len(extErr.Fields) > 0 {
		return FilingFigures{}, &extErr
	}
	return figures, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, ln := range raw {
		lines[i] = strings.TrimSpace(ln)
	}
	return lines
}

type labelMatch struct {
	line int    // index of the line the label appears on
	rest string // text following the label on that line
}

func findLabel(lines []string, labelRe *regexp.Regexp) (labelMatch, bool) {
	for i, line := range lines {
		if loc := labelRe.FindStringIndex(line); loc != nil {
			return labelMatch{line: i, rest: line[loc[1]:]}, true
		}
	}
	return labelMatch{}, false
}

// token is one numeric candidate on a line.
type token struct {
	raw       string
	col       int // character offset, lower = further left
	hasDollar bool
	digits    int // digit count after stripping separators
}

// isYear reports whether the token is a bare fiscal year (1900-2100).
// A dollar-marked year-like number is still a value.
func (t token) isYear() bool {
	if t.hasDollar || t.digits != 4 {
		return false
	}
	n, err := strconv.Atoi(digitsOnly(t.raw))
	return err == nil && n >= 1900 && n <= 2100
}

// moneyLike reports whether the token qualifies as a value candidate:
// it carries a currency marker, or has enough digits to plausibly be a
// financial figure rather than a year or footnote index.
func (t token) moneyLike() bool {
	return t.hasDollar || (t.digits >= 4 && !t.isYear())
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tokenize returns the numeric candidates of a line in ascending column
// order, so the first qualifying token is always the leftmost one.
func tokenize(line string) []token {
	locs := numberRe.FindAllStringIndex(line, -1)
	toks := make([]token, 0, len(locs))
	for _, loc := range locs {
		raw := line[loc[0]:loc[1]]
		toks = append(toks, token{
			raw:       raw,
			col:       loc[0],
			hasDollar: strings.Contains(raw, "$"),
			digits:    len(digitsOnly(raw)),
		})
	}
	return toks
}

func resolveField(lines []string, labelRe *regexp.Regexp, field string) (string, *FieldError) {
	m, ok := findLabel(lines, labelRe)
	if !ok {
		return "", &FieldError{Field: field, Err: ErrLabelNotFound}
	}

	tok, ok := resolveValue(lines, m)
	if !ok {
		return "", &FieldError{Field: field, Err: ErrValueNotResolved}
	}

	norm, err := NormalizeAmount(tok.raw)
	if err != nil {
		return "", &FieldError{Field: field, Raw: tok.raw, Err: err}
	}
	return norm, nil
}

// resolveValue runs the three resolution attempts in priority order:
//  1. leftmost money-like token on the label line itself,
//  2. leftmost $-marked token on the first $-carrying line in the
//     look-ahead window ($ lines win anywhere in the window),
//  3. leftmost wide (>=4 digit, non-year) token on the first window
//     line that has one.
func resolveValue(lines []string, m labelMatch) (token, bool) {
	if tok, ok := sameLineValue(m.rest); ok {
		return tok, true
	}

	start := m.line + 1
	end := start + lookaheadLines
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[start:end]

	if tok, ok := firstDollarValue(window); ok {
		return tok, true
	}
	return firstWideValue(window)
}

func sameLineValue(rest string) (token, bool) {
	for _, tok := range tokenize(rest) {
		if tok.moneyLike() {
			return tok, true
		}
	}
	return token{}, false
}

func firstDollarValue(window []string) (token, bool) {
	for _, line := range window {
		for _, tok := range tokenize(line) {
			if tok.hasDollar {
				return tok, true
			}
		}
	}
	return token{}, false
}

func firstWideValue(window []string) (token, bool) {
	for _, line := range window {
		for _, tok := range tokenize(line) {
			if tok.digits >= 4 && !tok.isYear() {
				return tok, true
			}
		}
	}
	return token{}, false
}
