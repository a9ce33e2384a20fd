package service

import (
	"fmt"

	"github.com/arandersen/filing-extractor/dto"
	"github.com/arandersen/filing-extractor/utils"
)

type ExtractionService struct {
	pdfProcessor PDFProcessor
}

func NewExtractionService(pdfProcessor PDFProcessor) *ExtractionService {
	return &ExtractionService{
		pdfProcessor: pdfProcessor,
	}
}

// ExtractFiling runs the full pipeline over an uploaded PDF: structural
// validation, text-layer flattening, line-item extraction, and gross
// profit derivation. The optional period end date is echoed back in the
// response and never consulted during matching.
func (s *ExtractionService) ExtractFiling(pdfData []byte, periodEndDate string) (*dto.ExtractResponse, error) {
	if err := s.pdfProcessor.Validate(pdfData); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInvalidPDF, err)
	}

	text, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from pdf: %w", err)
	}

	figures, err := utils.ExtractFilingFigures(text)
	if err != nil {
		return nil, err
	}

	grossProfit, err := utils.ComputeGrossProfit(figures.Revenue, figures.CostOfSales)
	if err != nil {
		return nil, fmt.Errorf("failed to compute gross profit: %w", err)
	}

	response := &dto.ExtractResponse{
		Results: dto.FilingResults{
			Revenue:     figures.Revenue,
			CostOfSales: figures.CostOfSales,
			GrossProfit: grossProfit,
		},
	}
	if periodEndDate != "" {
		response.PeriodEndDate = &periodEndDate
	}
	return response, nil
}
