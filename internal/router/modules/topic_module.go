package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ozancz/sozluk/internal/container"
	handlers "github.com/ozancz/sozluk/internal/interface/http"
	"github.com/ozancz/sozluk/internal/interface/middleware"
	"github.com/ozancz/sozluk/pkg/helpers"
)

// TopicModule wires topic routes.
// Public: GET /api/topics (views), GET /api/topics/search, GET /api/topics/:slug
// Protected: POST /api/topics (compound topic+first-entry creation)
type TopicModule struct {
	Handler *handlers.TopicHandler
	JWT     *helpers.JWTManager
}

func NewTopicModule(h *handlers.TopicHandler, jwt *helpers.JWTManager) *TopicModule {
	return &TopicModule{Handler: h, JWT: jwt}
}

func (m *TopicModule) Register(rg *gin.RouterGroup) {
	rg.GET("/topics", m.Handler.List)
	rg.GET("/topics/search", m.Handler.Search)
	rg.GET("/topics/:slug", m.Handler.GetBySlug)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/topics", m.Handler.Create)
	}
}
