package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutClearsAllSessionCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/logout", Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cleared := make(map[string]bool)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Value == "" && cookie.MaxAge < 0 {
			cleared[cookie.Name] = true
		}
	}
	require.True(t, cleared[middleware.AuthCookieName], "auth cookie not cleared")
	require.True(t, cleared[middleware.SessionCookieName], "session cookie not cleared")
}
