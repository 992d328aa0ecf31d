package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"api/database"
	"api/metrics"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Login authenticates a user
// @Summary Login
// @Description Authenticate with username and password; sets the auth cookie on success. Failed attempts are throttled per session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := middleware.GetSessionID(c)
	now := time.Now().UTC()
	activity := services.NewActivityService(services.NewActivityStore(database.DB))

	if locked, wait := activity.LoginLocked(sessionID, now); locked {
		metrics.LoginThrottleRejections.Inc()
		response.TooManyRequests(c, wait, ErrTooManyAttempts)
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error
	notFound := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !notFound {
		response.Error(c, http.StatusInternalServerError, "Database error during login")
		return
	}

	success := !notFound && utils.CheckPasswordHash(req.Password, user.PasswordHash)

	// Attempt logging must never block login, degrade to a warning
	if attempt, logErr := activity.RecordLoginAttempt(sessionID, now, username, success); logErr != nil {
		log.Warnf("failed to record login attempt for session %s: %v", sessionID, logErr)
	} else {
		realtime.BroadcastActivity(realtime.ActivityEvent{
			Type:      realtime.EventLoginAttempt,
			Timestamp: now,
			Payload:   attempt,
		})
	}

	if !success {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := middleware.CreateToken(user.ID, tokenLifetime(req.RememberMe))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token, req.RememberMe)

	if err := database.DB.Model(&user).Update("last_connected", now).Error; err != nil {
		log.Warnf("failed to update last_connected for %s: %v", user.Username, err)
	}

	// Retroactively attribute this session's anonymous visit of today
	if _, err := activity.RecordVisit(sessionID, now, user.Username, user.Admin); err != nil {
		log.Warnf("failed to attribute visit for session %s: %v", sessionID, err)
	}

	c.JSON(http.StatusOK, AuthResponse{
		UserID:        user.ID,
		Username:      user.Username,
		Admin:         user.Admin,
		LastConnected: user.LastConnected,
	})
}

// CheckAuth returns the authenticated user behind the current token
// @Summary Check authentication
// @Description Validate the auth cookie and return the current user
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	c.JSON(http.StatusOK, AuthResponse{
		UserID:        user.ID,
		Username:      user.Username,
		Admin:         user.Admin,
		LastConnected: user.LastConnected,
	})
}

// Logout clears the authentication and session cookies
// @Summary Logout
// @Description Clear the auth and session cookies, ending all session state; the next visit starts a fresh anonymous session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", true, true)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": ErrLogoutSuccess})
}
