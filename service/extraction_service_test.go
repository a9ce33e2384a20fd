package service

import (
	"errors"
	"testing"

	"github.com/arandersen/filing-extractor/dto"
	"github.com/arandersen/filing-extractor/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPDFProcessor struct {
	text        string
	validateErr error
	extractErr  error
}

func (s *stubPDFProcessor) Validate(pdfData []byte) error {
	return s.validateErr
}

func (s *stubPDFProcessor) ExtractText(pdfData []byte) (string, error) {
	return s.text, s.extractErr
}

func TestExtractFiling(t *testing.T) {
	svc := NewExtractionService(&stubPDFProcessor{
		text: "Revenues\n\n$ 307,394   $ 280,522\nCost of revenues\n$ 133,332   $ 120,100",
	})

	response, err := svc.ExtractFiling([]byte("%PDF"), "2023-12-31")

	require.NoError(t, err)
	assert.Equal(t, "307394", response.Results.Revenue)
	assert.Equal(t, "133332", response.Results.CostOfSales)
	assert.Equal(t, "174062", response.Results.GrossProfit)
	require.NotNil(t, response.PeriodEndDate)
	assert.Equal(t, "2023-12-31", *response.PeriodEndDate)
}

func TestExtractFilingNoPeriodEndDate(t *testing.T) {
	svc := NewExtractionService(&stubPDFProcessor{
		text: "Revenues $ 1,500\nCost of Sales $ 900",
	})

	response, err := svc.ExtractFiling([]byte("%PDF"), "")

	require.NoError(t, err)
	assert.Nil(t, response.PeriodEndDate)
	assert.Equal(t, "600", response.Results.GrossProfit)
}

func TestExtractFilingMissingFields(t *testing.T) {
	svc := NewExtractionService(&stubPDFProcessor{
		text: "nothing financial here",
	})

	_, err := svc.ExtractFiling([]byte("%PDF"), "")

	require.Error(t, err)
	var extErr *utils.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Len(t, extErr.Fields, 2)
}

func TestExtractFilingInvalidPDF(t *testing.T) {
	svc := NewExtractionService(&stubPDFProcessor{
		validateErr: errors.New("xref table corrupt"),
	})

	_, err := svc.ExtractFiling([]byte("not a pdf"), "")

	assert.ErrorIs(t, err, dto.ErrInvalidPDF)
}

func TestExtractFilingTextExtractionFails(t *testing.T) {
	svc := NewExtractionService(&stubPDFProcessor{
		extractErr: errors.New("encrypted document"),
	})

	_, err := svc.ExtractFiling([]byte("%PDF"), "")

	require.Error(t, err)
	var extErr *utils.ExtractionError
	assert.False(t, errors.As(err, &extErr))
}
