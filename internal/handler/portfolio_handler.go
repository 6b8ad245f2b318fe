package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentintel/internal/domain"
	"rentintel/internal/service"
)

// PortfolioHandler handles landlord portfolio dashboard endpoints.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Snapshot handles GET /api/v1/portfolio
// @Summary Portfolio snapshot for the current cycle
// @Description Units with derived statuses plus collection and occupancy aggregates. The "late" filter also includes pending units.
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter; unrecognized values fall back to all" Enums(all, paid, late, vacant)
// @Success 200 {object} APIResponse{data=service.PortfolioView} "Snapshot"
// @Router /portfolio [get]
func (h *PortfolioHandler) Snapshot(c *gin.Context) {
	filter := domain.ParseStatusFilter(c.DefaultQuery("status", "all"))

	view, err := h.portfolioService.Snapshot(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Report handles GET /api/v1/portfolio/report
// @Summary Download the portfolio report as XLSX
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {string} string "XLSX file"
// @Router /portfolio/report [get]
func (h *PortfolioHandler) Report(c *gin.Context) {
	data, err := h.portfolioService.ReportXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("portfolio_%s.xlsx", time.Now().Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
