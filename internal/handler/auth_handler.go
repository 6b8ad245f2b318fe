package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentintel/internal/service"
)

// AuthHandler handles the landlord access gate.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginLandlord handles POST /api/v1/auth/landlord
// @Summary Unlock landlord views
// @Description Exchange the landlord access PIN for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Access PIN"
// @Success 200 {object} APIResponse{data=service.Session} "Session token"
// @Failure 401 {object} APIResponse "Incorrect PIN"
// @Router /auth/landlord [post]
func (h *AuthHandler) LoginLandlord(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.authService.LoginLandlord(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, session)
}
