package dto

import (
	"mime/multipart"
	"strings"
)

// ExtractRequest represents the incoming request
type ExtractRequest struct {
	File          *multipart.FileHeader `form:"file" binding:"required"`
	PeriodEndDate string                `form:"period_end_date"`
}

// Validate performs basic validation on the request. The content-type
// check is a guard, not proof; pdfcpu validates the bytes later.
func (r *ExtractRequest) Validate() error {
	if r.File == nil {
		return ErrMissingFile
	}

	contentType := strings.ToLower(r.File.Header.Get("Content-Type"))
	name := strings.ToLower(r.File.Filename)
	if !strings.Contains(contentType, "pdf") && !strings.HasSuffix(name, ".pdf") {
		return ErrNotAPDF
	}
	return nil
}
