package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ozancz/sozluk/internal/application"
	"github.com/ozancz/sozluk/internal/domain/entity"
	"github.com/ozancz/sozluk/pkg/response"
)

// currentAuthor rebuilds the acting identity from the auth middleware's
// context keys. Nil means the request is unauthenticated.
func currentAuthor(c *gin.Context) *entity.Author {
	id := c.GetString("userID")
	if id == "" {
		return nil
	}
	return &entity.Author{
		ID:          id,
		Username:    c.GetString("userName"),
		DisplayName: c.GetString("userDisplayName"),
	}
}

// intQuery parses a numeric query param, falling back on garbage input.
func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// fail maps the application error taxonomy onto HTTP statuses. Unknown
// errors are logged and surface as an opaque 500.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, verr.Msg, nil)
	case errors.Is(err, application.ErrUnauthorized),
		errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrTopicNotFound),
		errors.Is(err, application.ErrEntryNotFound),
		errors.Is(err, application.ErrCommentNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrDuplicateSlug),
		errors.Is(err, application.ErrDuplicateUsername),
		errors.Is(err, application.ErrDuplicateEmail),
		errors.Is(err, application.ErrAlreadyLiked),
		errors.Is(err, application.ErrNotLiked):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
