package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rentintel/internal/domain"
	"rentintel/internal/handler"
	"rentintel/internal/service"
	"rentintel/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestAuthHandler_LoginLandlord_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	session := &service.Session{
		AccessToken: "signed-token",
		ExpiresAt:   time.Now().Add(12 * time.Hour),
	}
	mockAuth.On("LoginLandlord", service.LoginInput{PIN: "2024"}).Return(session, nil)

	w, c := postJSON(t, map[string]string{"pin": "2024"})
	h.LoginLandlord(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_LoginLandlord_WrongPIN(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("LoginLandlord", service.LoginInput{PIN: "0000"}).Return(nil, domain.ErrInvalidPIN)

	w, c := postJSON(t, map[string]string{"pin": "0000"})
	h.LoginLandlord(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_PIN", resp.Error.Code)
}

func TestAuthHandler_LoginLandlord_MissingPIN(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	w, c := postJSON(t, map[string]string{})
	h.LoginLandlord(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "LoginLandlord")
}
