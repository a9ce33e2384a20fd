package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/arandersen/filing-extractor/dto"
	"github.com/arandersen/filing-extractor/service"
	"github.com/arandersen/filing-extractor/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExtractHandler struct {
	extractionService *service.ExtractionService
	maxFileSize       int64
}

func NewExtractHandler(extractionService *service.ExtractionService, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
		maxFileSize:       maxFileSize,
	}
}

// ExtractFiling handles the POST /filings/extract endpoint
func (h *ExtractHandler) ExtractFiling(c *gin.Context) {
	reqID := uuid.NewString()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, reqID, http.StatusBadRequest, dto.ErrMissingFile.Error(), err)
		return
	}

	request := &dto.ExtractRequest{
		File:          fileHeader,
		PeriodEndDate: c.PostForm("period_end_date"),
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, reqID, http.StatusBadRequest, err.Error(), err)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		h.sendError(c, reqID, http.StatusBadRequest, "uploaded file is too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, reqID, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, reqID, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}

	log.Printf("[%s] extracting filing values from %s (%d bytes)", reqID, fileHeader.Filename, fileHeader.Size)

	response, err := h.extractionService.ExtractFiling(pdfData, request.PeriodEndDate)
	if err != nil {
		var extErr *utils.ExtractionError
		switch {
		case errors.As(err, &extErr):
			h.sendError(c, reqID, http.StatusUnprocessableEntity, extErr.Error(), err)
		case errors.Is(err, dto.ErrInvalidPDF):
			h.sendError(c, reqID, http.StatusBadRequest, dto.ErrInvalidPDF.Error(), err)
		default:
			h.sendError(c, reqID, http.StatusInternalServerError, "failed to extract values from PDF", err)
		}
		return
	}

	log.Printf("[%s] extraction completed", reqID)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *ExtractHandler) sendError(c *gin.Context, reqID string, statusCode int, message string, err error) {
	if err != nil {
		log.Printf("[%s] error: %s - %v", reqID, message, err)
	} else {
		log.Printf("[%s] error: %s", reqID, message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error: message,
	})
}
