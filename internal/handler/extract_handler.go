package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentintel/internal/service"
)

// ExtractHandler handles evidence extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// ExtractTextRequest is the DTO for SMS text extraction.
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractText handles POST /api/v1/extract/text
// @Summary Extract payment details from SMS text
// @Description Run extraction over a pasted mobile-money SMS. Always returns a result; a zero confidence score with defaults means extraction failed and the user should enter the record manually.
// @Tags extract
// @Accept json
// @Produce json
// @Param request body ExtractTextRequest true "SMS text"
// @Success 200 {object} APIResponse{data=domain.ExtractionResult} "Extraction draft for review"
// @Router /extract/text [post]
func (h *ExtractHandler) ExtractText(c *gin.Context) {
	var req ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "text is required")
		return
	}

	result := h.extractionService.ExtractText(c.Request.Context(), req.Text)
	RespondOK(c, result)
}

// ExtractImage handles POST /api/v1/extract/image
// @Summary Extract payment details from a receipt or agreement photo
// @Description Multipart upload of a jpg/png evidence image. The original is archived for audit before extraction.
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Evidence image"
// @Success 200 {object} APIResponse{data=domain.ExtractionResult} "Extraction draft for review"
// @Failure 400 {object} APIResponse "Unsupported file type"
// @Failure 413 {object} APIResponse "File too large"
// @Router /extract/image [post]
func (h *ExtractHandler) ExtractImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.extractionService.ExtractImage(c.Request.Context(), contentType, fileHeader.Size, file)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
