package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/application"
	"github.com/ozancz/sozluk/pkg/response"
	"github.com/ozancz/sozluk/pkg/validation"
)

type EntryHandler struct {
	Svc    *application.EntryService
	Logger *logrus.Logger
}

func NewEntryHandler(svc *application.EntryService, logger *logrus.Logger) *EntryHandler {
	return &EntryHandler{Svc: svc, Logger: logger}
}

type createEntryRequest struct {
	TopicID string `json:"topicId" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

// List serves entries of a topic (?topicId=...) or the DEBE view
// (?view=debe): yesterday's entries ranked by likes.
func (h *EntryHandler) List(c *gin.Context) {
	page := application.NormalizePage(intQuery(c, "page", 1), intQuery(c, "limit", 0))

	entries, total, err := h.Svc.List(c.Request.Context(), application.ListEntriesInput{
		TopicID: c.Query("topicId"),
		Debe:    strings.ToLower(c.Query("view")) == "debe",
		Page:    page,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, entries, "entries", response.NewPagination(total, page.Page, page.Limit))
}

func (h *EntryHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "entry", nil)
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), currentAuthor(c), application.CreateEntryInput{
		TopicID: req.TopicID,
		Content: req.Content,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, e, "entry created", nil)
}

func (h *EntryHandler) Like(c *gin.Context) {
	e, err := h.Svc.Like(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "entry liked", nil)
}

func (h *EntryHandler) Unlike(c *gin.Context) {
	e, err := h.Svc.Unlike(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "entry unliked", nil)
}
