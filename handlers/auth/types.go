package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidCredentials  = "Invalid credentials"
	ErrTooManyAttempts     = "Too many failed attempts, please try again later"
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrLogoutSuccess       = "Successfully logged out"
)

// LoginRequest model for the login endpoint
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResponse model for authentication responses
type AuthResponse struct {
	UserID        string     `json:"user_id"`
	Username      string     `json:"username"`
	Admin         bool       `json:"admin"`
	LastConnected *time.Time `json:"last_connected"`
}

// setCookieToken sets the authentication token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string, rememberMe bool) {
	var maxAge time.Duration
	if rememberMe {
		maxAge = 30 * 24 * time.Hour // 30 days
	} else {
		maxAge = 1 * 24 * time.Hour // 1 day
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",          // name
		token,                 // value
		int(maxAge.Seconds()), // max age in seconds
		"/",                   // path
		"",                    // domain
		true,                  // secure (HTTPS only)
		true,                  // httpOnly (not accessible via JavaScript)
	)
}

// tokenLifetime mirrors the cookie lifetime so the JWT never outlives it
func tokenLifetime(rememberMe bool) time.Duration {
	if rememberMe {
		return 30 * 24 * time.Hour
	}
	return 24 * time.Hour
}
