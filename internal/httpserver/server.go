package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/communityhub/events-service/internal/auth"
	"github.com/communityhub/events-service/internal/config"
	"github.com/communityhub/events-service/internal/handlers"
)

// Store is what the router needs from the persistence layer: the handler
// operations plus connectivity checks for readiness.
type Store interface {
	handlers.DocumentStore
	Ping(ctx context.Context) error
}

// NewRouter wires public endpoints and the API surface.
// Public: /health, /ready
// API (behind the platform key when configured): /events, /feedback
func NewRouter(cfg config.Config, logger zerolog.Logger, st Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(corsHeaders())

	// Requests with an unsupported verb on a known route are a contract
	// violation, not a 405.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported method"})
	})

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the store dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	api := r.Group("/")
	if cfg.APIKey != "" {
		api.Use(auth.APIKeyMiddleware(cfg.APIKey))
	}

	handlers.RegisterEventRoutes(api, st)
	handlers.RegisterFeedbackRoutes(api, st)

	return r
}

// requestLogger attaches the service logger to each request context so
// handlers can log through zerolog.Ctx.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithContext(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// corsHeaders sets the static, permissive cross-origin policy on every
// response and short-circuits preflight requests.
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
