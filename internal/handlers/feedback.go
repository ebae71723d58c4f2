package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/communityhub/events-service/internal/apperr"
	"github.com/communityhub/events-service/internal/models"
)

// RegisterFeedbackRoutes registers the feedback submission endpoint.
//
// POST /feedback body {feedbackArea, feedbackText, feedbackType} → {message}
//
// Feedback is create-only; there is no read, update, or delete path.
func RegisterFeedbackRoutes(r gin.IRoutes, st DocumentStore) {
	r.POST("/feedback", func(c *gin.Context) { submitFeedback(c, st) })
}

func submitFeedback(c *gin.Context, st DocumentStore) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		writeError(c, apperr.Wrap(apperr.Internal, "invalid request body", err))
		return
	}

	if strings.TrimSpace(fb.FeedbackArea) == "" {
		writeError(c, apperr.New(apperr.Validation, "feedbackArea required"))
		return
	}
	if strings.TrimSpace(fb.FeedbackText) == "" {
		writeError(c, apperr.New(apperr.Validation, "feedbackText required"))
		return
	}
	if strings.TrimSpace(fb.FeedbackType) == "" {
		writeError(c, apperr.New(apperr.Validation, "feedbackType required"))
		return
	}

	// A client-supplied id is never trusted; every submission gets a
	// fresh server-generated one.
	fb.ID = uuid.New().String()

	if err := st.CreateItem(c.Request.Context(), ContainerFeedback, fb.ID, fb.ID, fb); err != nil {
		writeError(c, apperr.Wrap(apperr.Internal, "store write failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback submitted"})
}
