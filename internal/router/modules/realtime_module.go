package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ozancz/sozluk/internal/interface/http"
)

// RealtimeModule exposes the websocket endpoint at GET /api/ws. The handler
// itself decides whether the connection carries a session.
type RealtimeModule struct {
	Handler *handlers.WSHandler
}

func NewRealtimeModule(h *handlers.WSHandler) *RealtimeModule {
	return &RealtimeModule{Handler: h}
}

func (m *RealtimeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ws", m.Handler.Serve)
}
