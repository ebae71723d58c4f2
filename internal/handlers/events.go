package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/communityhub/events-service/internal/apperr"
	"github.com/communityhub/events-service/internal/models"
	"github.com/communityhub/events-service/internal/store"
)

// dateField is the indexed document field list queries filter on.
const dateField = "date"

// RegisterEventRoutes registers the calendar-event endpoints.
//
// POST   /events  body {title, date, time?, id?}  → {message, eventId}
// GET    /events  ?date=X or ?startDate=A&endDate=B → [Event...]
// DELETE /events  body {id, date}                 → {message}
//
// Every request performs exactly one store call. The partition key for
// both writes and deletes is the event id.
func RegisterEventRoutes(r gin.IRoutes, st DocumentStore) {
	r.POST("/events", func(c *gin.Context) { createEvent(c, st) })
	r.GET("/events", func(c *gin.Context) { listEvents(c, st) })
	r.DELETE("/events", func(c *gin.Context) { deleteEvent(c, st) })
}

func createEvent(c *gin.Context, st DocumentStore) {
	var ev models.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		// A body that fails to parse is an internal error under this
		// contract, not a validation failure.
		writeError(c, apperr.Wrap(apperr.Internal, "invalid request body", err))
		return
	}

	if strings.TrimSpace(ev.Title) == "" {
		writeError(c, apperr.New(apperr.Validation, "title required"))
		return
	}
	if strings.TrimSpace(ev.Date) == "" {
		writeError(c, apperr.New(apperr.Validation, "date required"))
		return
	}

	// Client ids are honored; otherwise mint a ULID so generated ids are
	// timestamp-ordered and unique per call.
	if ev.ID == "" {
		ev.ID = ulid.Make().String()
	}

	if err := st.CreateItem(c.Request.Context(), ContainerEvents, ev.ID, ev.ID, ev); err != nil {
		writeError(c, apperr.Wrap(apperr.Internal, "store write failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "event created",
		"eventId": ev.ID,
	})
}

func listEvents(c *gin.Context, st DocumentStore) {
	date := c.Query("date")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	var (
		docs []json.RawMessage
		err  error
	)
	switch {
	case date != "":
		docs, err = st.QueryByField(c.Request.Context(), ContainerEvents, dateField, date)
	case startDate != "" && endDate != "":
		docs, err = st.QueryByFieldRange(c.Request.Context(), ContainerEvents, dateField, startDate, endDate)
	default:
		writeError(c, apperr.New(apperr.Validation, "date or startDate and endDate required"))
		return
	}
	if err != nil {
		writeError(c, apperr.Wrap(apperr.Internal, "store query failed", err))
		return
	}

	// Empty result sets are a valid answer: [] rather than null or an error.
	events := make([]models.Event, 0, len(docs))
	for _, doc := range docs {
		var ev models.Event
		if err := json.Unmarshal(doc, &ev); err != nil {
			writeError(c, apperr.Wrap(apperr.Internal, "decode stored event", err))
			return
		}
		events = append(events, ev)
	}

	c.JSON(http.StatusOK, events)
}

func deleteEvent(c *gin.Context, st DocumentStore) {
	var req models.EventDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Wrap(apperr.Internal, "invalid request body", err))
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		writeError(c, apperr.New(apperr.Validation, "id required"))
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		writeError(c, apperr.New(apperr.Validation, "date required"))
		return
	}

	err := st.DeleteItem(c.Request.Context(), ContainerEvents, req.ID, req.ID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, apperr.Wrap(apperr.NotFound, "event not found", err))
		return
	}
	if err != nil {
		writeError(c, apperr.Wrap(apperr.Internal, "store delete failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
