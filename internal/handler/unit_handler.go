package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentintel/internal/service"
)

// UnitHandler handles landlord unit roster endpoints.
type UnitHandler struct {
	unitService   service.UnitService
	recordService service.RecordService
}

// NewUnitHandler creates a new UnitHandler.
func NewUnitHandler(unitService service.UnitService, recordService service.RecordService) *UnitHandler {
	return &UnitHandler{unitService: unitService, recordService: recordService}
}

func unitIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid unit id")
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/units
// @Summary Add a unit to the roster
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UnitInput true "Unit details"
// @Success 201 {object} APIResponse{data=domain.Unit} "Created unit"
// @Router /units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var input service.UnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	unit, err := h.unitService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, unit)
}

// List handles GET /api/v1/units
// @Summary List the unit roster
// @Tags units
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse{data=[]domain.Unit} "Units"
// @Router /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.unitService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, units)
}

// Get handles GET /api/v1/units/:id
// @Summary Get a unit by ID
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} APIResponse{data=domain.Unit} "Unit"
// @Router /units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, unit)
}

// Update handles PUT /api/v1/units/:id
// @Summary Edit a unit
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body service.UnitInput true "Unit details"
// @Success 200 {object} APIResponse{data=domain.Unit} "Updated unit"
// @Router /units/{id} [put]
func (h *UnitHandler) Update(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}

	var input service.UnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	unit, err := h.unitService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, unit)
}

// Vacate handles POST /api/v1/units/:id/vacate
// @Summary Move a tenant out
// @Description Clears the tenant fields; the unit itself stays on the roster.
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} APIResponse{data=domain.Unit} "Vacated unit"
// @Router /units/{id}/vacate [post]
func (h *UnitHandler) Vacate(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}

	unit, err := h.unitService.Vacate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, unit)
}

// Delete handles DELETE /api/v1/units/:id
// @Summary Remove a unit from the roster
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} APIResponse "Deleted"
// @Router /units/{id} [delete]
func (h *UnitHandler) Delete(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}

	if err := h.unitService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// Collect handles POST /api/v1/units/:id/collect
// @Summary Log a cash collection for a unit
// @Description Creates a verified ledger record for the unit's full rent amount, dated today.
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 201 {object} APIResponse{data=domain.RentRecord} "Verified record"
// @Router /units/{id}/collect [post]
func (h *UnitHandler) Collect(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}

	record, err := h.recordService.CollectCash(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// Remind handles POST /api/v1/units/:id/remind
// @Summary Send a rent-due reminder to a unit's tenant
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} APIResponse "Reminder sent"
// @Router /units/{id}/remind [post]
func (h *UnitHandler) Remind(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}

	if err := h.unitService.Remind(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"sent": true})
}
