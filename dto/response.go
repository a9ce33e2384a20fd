package dto

import "errors"

// Custom errors
var (
	ErrMissingFile = errors.New("missing 'file' (PDF) in form-data")
	ErrNotAPDF     = errors.New("uploaded file must be a PDF")
	ErrInvalidPDF  = errors.New("uploaded file is not a valid PDF")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ExtractResponse is the final response structure
type ExtractResponse struct {
	PeriodEndDate *string       `json:"period_end_date"`
	Results       FilingResults `json:"results"`
}
