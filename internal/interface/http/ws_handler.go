package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/realtime"
	"github.com/ozancz/sozluk/pkg/helpers"
)

// WSHandler upgrades observers onto the notification relay. Authentication is
// optional: an anonymous connection still receives every event, but only an
// authenticated one can be excluded as an event's originator.
type WSHandler struct {
	Hub      *realtime.Hub
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *realtime.Hub, jwt *helpers.JWTManager, logger *logrus.Logger, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WSHandler{
		Hub:    hub,
		JWT:    jwt,
		Logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 || allowed["*"] {
					return true
				}
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

func (h *WSHandler) Serve(c *gin.Context) {
	userID := h.sessionUserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		if h.Logger != nil {
			h.Logger.WithError(err).Debug("websocket upgrade failed")
		}
		return
	}
	realtime.NewClient(h.Hub, conn, userID)
}

// sessionUserID pulls the identity out of the session cookie without
// rejecting the request when it is absent or invalid.
func (h *WSHandler) sessionUserID(c *gin.Context) string {
	token, err := c.Cookie("session_token")
	if err != nil || token == "" {
		return ""
	}
	claims, err := h.JWT.ParseSessionToken(token)
	if err != nil {
		return ""
	}
	return claims.UserID
}
