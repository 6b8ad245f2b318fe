package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rentintel/internal/domain"
	"rentintel/internal/middleware"
)

func loggedRequest(t *testing.T, withRole bool) string {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/ping", func(c *gin.Context) {
		if withRole {
			c.Set(middleware.ContextKeyRole, string(domain.RoleLandlord))
		}
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	return buf.String()
}

func TestLogger_IncludesCallerRole(t *testing.T) {
	line := loggedRequest(t, true)

	assert.Contains(t, line, "GET /ping 200")
	assert.Contains(t, line, "role=landlord")
}

func TestLogger_AnonymousRequestHasPlaceholderRole(t *testing.T) {
	line := loggedRequest(t, false)

	assert.Contains(t, line, "role=-")
}
