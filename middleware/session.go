package middleware

import (
	"strings"
	"time"

	"api/database"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// SessionCookieName identifies one browser visit
	SessionCookieName = "session_id"

	sessionContextKey = "session_id"

	sessionCookieMaxAge = 30 * 24 * 60 * 60 // seconds
)

// Paths polled by infrastructure clients (Prometheus, health checks, the
// swagger UI) that never carry cookies. Minting a session per scrape would
// fill visit_logs with bogus anonymous rows, so these get neither a cookie
// nor a visit.
var sessionExemptPrefixes = []string{
	"/api/v1/metrics",
	"/api/v1/ping",
	"/swagger",
}

func sessionExempt(path string) bool {
	for _, prefix := range sessionExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionMiddleware assigns every request an opaque session identifier
// (creating the cookie on first contact) and records the daily visit.
// Visit logging is best effort: a store outage degrades to a warning.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionExempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", true, true)
		}
		c.Set(sessionContextKey, sessionID)

		recordVisit(c, sessionID)

		c.Next()
	}
}

// GetSessionID returns the session identifier assigned by SessionMiddleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

func recordVisit(c *gin.Context, sessionID string) {
	var username string
	var isAdmin bool
	if user := CurrentUser(c); user != nil {
		username = user.Username
		isAdmin = user.Admin
	}

	activity := services.NewActivityService(services.NewActivityStore(database.DB))
	created, err := activity.RecordVisit(sessionID, time.Now().UTC(), username, isAdmin)
	if err != nil {
		log.Warnf("failed to record visit for session %s: %v", sessionID, err)
		return
	}
	if created {
		realtime.BroadcastActivity(realtime.ActivityEvent{
			Type:      realtime.EventVisit,
			Timestamp: time.Now().UTC(),
			Payload:   gin.H{"session_id": sessionID, "username": username, "is_admin": isAdmin},
		})
	}
}
