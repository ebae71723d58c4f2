package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/communityhub/events-service/internal/apperr"
)

// Container names, created at startup via EnsureContainer.
const (
	ContainerEvents   = "events"
	ContainerFeedback = "feedback"
)

// DocumentStore is the slice of the persistence layer the handlers depend
// on. It is injected at registration time; tests substitute a fake.
type DocumentStore interface {
	CreateItem(ctx context.Context, container, id, partitionKey string, doc any) error
	QueryByField(ctx context.Context, container, field, value string) ([]json.RawMessage, error)
	QueryByFieldRange(ctx context.Context, container, field, lo, hi string) ([]json.RawMessage, error)
	DeleteItem(ctx context.Context, container, id, partitionKey string) error
}

// writeError maps an error to its HTTP status, logs it, and writes the JSON
// error body. Causes of 5xx responses are logged server-side only; the
// caller sees a generic message.
func writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := apperr.Status(kind)

	logger := zerolog.Ctx(c.Request.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Err(err).
		Int("status", status).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	msg := http.StatusText(status)
	var e *apperr.Error
	if errors.As(err, &e) && status < http.StatusInternalServerError {
		msg = e.Msg
	}
	c.JSON(status, gin.H{"error": msg})
}
