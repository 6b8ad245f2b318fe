package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentintel/internal/csvexport"
	"rentintel/internal/domain"
	"rentintel/internal/service"
)

// RecordHandler handles rent record ledger endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// Confirm handles POST /api/v1/records
// @Summary Finalize a reviewed payment draft
// @Description Merge the reviewed draft with defaults into an immutable ledger record. Records created here are never verified; verification is reserved for the trusted cash-collection flow.
// @Tags records
// @Accept json
// @Produce json
// @Param request body domain.RecordDraft true "Reviewed draft"
// @Success 201 {object} APIResponse{data=domain.RentRecord} "Finalized record"
// @Router /records [post]
func (h *RecordHandler) Confirm(c *gin.Context) {
	var draft domain.RecordDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.recordService.Confirm(c.Request.Context(), draft)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// List handles GET /api/v1/records
// @Summary List the payment ledger
// @Description Full ledger ordered by payment date descending.
// @Tags records
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.RentRecord} "Ledger"
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// Summary handles GET /api/v1/summary
// @Summary Tenant dashboard summary
// @Description Total paid, record count, and the most recent payment.
// @Tags records
// @Produce json
// @Success 200 {object} APIResponse{data=service.TenantSummary} "Summary"
// @Router /summary [get]
func (h *RecordHandler) Summary(c *gin.Context) {
	summary, err := h.recordService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Export handles GET /api/v1/records/export
// @Summary Export the ledger as CSV
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /records/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="rent_records.csv"`)
	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRecords(records); err != nil {
		return
	}
	w.Flush()
}
