package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/application"
	"github.com/ozancz/sozluk/pkg/response"
	"github.com/ozancz/sozluk/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type createCommentRequest struct {
	EntryID string `json:"entryId" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) List(c *gin.Context) {
	page := application.NormalizePage(intQuery(c, "page", 1), intQuery(c, "limit", 0))

	comments, total, err := h.Svc.List(c.Request.Context(), c.Query("entryId"), page)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", response.NewPagination(total, page.Page, page.Limit))
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cm, err := h.Svc.Create(c.Request.Context(), currentAuthor(c), application.CreateCommentInput{
		EntryID: req.EntryID,
		Content: req.Content,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment created", nil)
}
