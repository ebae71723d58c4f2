package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/communityhub/events-service/internal/config"
	"github.com/communityhub/events-service/internal/handlers"
	"github.com/communityhub/events-service/internal/httpserver"
	"github.com/communityhub/events-service/internal/store"
)

// main boots the service: config → store → containers → HTTP server.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "events-api").Logger()

	// Load runtime config from environment (STORE_URL, API_KEY, LISTEN_ADDR).
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	// Connect to the document store using a connection pool.
	st, err := store.New(cfg.StoreURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect store")
	}
	defer st.Close()

	// Ensure containers exist so a fresh database is enough to run.
	// Events carry an index on the date field, the list-query filter.
	ctx := context.Background()
	if err := st.EnsureContainer(ctx, handlers.ContainerEvents, "date"); err != nil {
		logger.Fatal().Err(err).Msg("ensure events container")
	}
	if err := st.EnsureContainer(ctx, handlers.ContainerFeedback); err != nil {
		logger.Fatal().Err(err).Msg("ensure feedback container")
	}

	// Build HTTP router (public health + API surface).
	router := httpserver.NewRouter(cfg, logger, st)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("server started")
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
