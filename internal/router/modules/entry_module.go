package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ozancz/sozluk/internal/container"
	handlers "github.com/ozancz/sozluk/internal/interface/http"
	"github.com/ozancz/sozluk/internal/interface/middleware"
	"github.com/ozancz/sozluk/pkg/helpers"
)

// EntryModule wires entry routes.
// Public: GET /api/entries (topic listing and the DEBE view), GET /api/entries/:id
// Protected: POST /api/entries, POST/DELETE /api/entries/:id/likes
type EntryModule struct {
	Handler *handlers.EntryHandler
	JWT     *helpers.JWTManager
}

func NewEntryModule(h *handlers.EntryHandler, jwt *helpers.JWTManager) *EntryModule {
	return &EntryModule{Handler: h, JWT: jwt}
}

func (m *EntryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/entries", m.Handler.List)
	rg.GET("/entries/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/entries", m.Handler.Create)
		auth.POST("/entries/:id/likes", m.Handler.Like)
		auth.DELETE("/entries/:id/likes", m.Handler.Unlike)
	}
}
