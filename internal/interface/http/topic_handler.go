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

type TopicHandler struct {
	Svc    *application.TopicService
	Logger *logrus.Logger
}

func NewTopicHandler(svc *application.TopicService, logger *logrus.Logger) *TopicHandler {
	return &TopicHandler{Svc: svc, Logger: logger}
}

type createTopicRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	FirstEntry  string   `json:"firstEntry" binding:"required"`
}

// List serves the ranked views: ?view=popular, ?view=today, or the default
// newest-first listing.
func (h *TopicHandler) List(c *gin.Context) {
	view := strings.ToLower(c.Query("view"))
	page := application.NormalizePage(intQuery(c, "page", 1), intQuery(c, "limit", 0))

	topics, total, err := h.Svc.List(c.Request.Context(), application.ListTopicsInput{
		Popular: view == "popular",
		Today:   view == "today",
		Page:    page,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, topics, "topics", response.NewPagination(total, page.Page, page.Limit))
}

func (h *TopicHandler) GetBySlug(c *gin.Context) {
	t, err := h.Svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "topic", nil)
}

// Create handles the compound topic+first-entry creation.
func (h *TopicHandler) Create(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	topic, entry, err := h.Svc.Create(c.Request.Context(), currentAuthor(c), application.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		FirstEntry:  req.FirstEntry,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusCreated, map[string]any{"topic": topic, "entry": entry}, "topic created", nil)
}

func (h *TopicHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, intQuery(c, "size", 10))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
