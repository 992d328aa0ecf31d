package analytics

import (
	"api/realtime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ActivityFeed upgrades the connection and streams activity events (visits,
// suggestions, login attempts, game changes) to the admin dashboard
// @Summary Activity feed
// @Description WebSocket feed of live activity events
// @Tags Analytics
// @Success 101
// @Failure 401 {object} map[string]string
// @Router /analytics/ws [get]
// @Security Bearer
func ActivityFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnf("WebSocket upgrade failed: %v", err)
		return
	}

	realtime.RegisterClient(conn)
	defer func() {
		realtime.UnregisterClient(conn)
		conn.Close()
	}()

	// Hold the connection open; the hub pushes events. Clients never send
	// anything, so the first read error means they are gone.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
