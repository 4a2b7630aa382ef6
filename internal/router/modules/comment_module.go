package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ozancz/sozluk/internal/container"
	handlers "github.com/ozancz/sozluk/internal/interface/http"
	"github.com/ozancz/sozluk/internal/interface/middleware"
	"github.com/ozancz/sozluk/pkg/helpers"
)

// CommentModule wires comment routes.
// Public: GET /api/comments?entryId=...
// Protected: POST /api/comments
type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/comments", m.Handler.Create)
	}
}
