package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSessionExempt(t *testing.T) {
	tests := []struct {
		path   string
		exempt bool
	}{
		{"/api/v1/metrics", true},
		{"/api/v1/ping", true},
		{"/swagger/index.html", true},
		{"/api/v1/games/", false},
		{"/api/v1/suggestions/", false},
		{"/api/v1/auth/login", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.exempt, sessionExempt(tc.path), tc.path)
	}
}

func TestSessionMiddlewareSkipsInfrastructurePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/api/v1/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/v1/metrics", "/api/v1/ping"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// A scraper without cookies must not be handed a session
		assert.Empty(t, w.Result().Cookies(), path)
	}
}
