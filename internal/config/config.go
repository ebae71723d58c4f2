package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration required by the service.
type Config struct {
	StoreURL   string
	APIKey     string
	ListenAddr string
}

// Load reads required values from the environment, after loading a local
// .env file when one exists.
//
//	STORE_URL    required; document store connection string
//	API_KEY      optional; empty disables the platform API key check
//	LISTEN_ADDR  optional; defaults to :8080
func Load() (Config, error) {
	_ = godotenv.Load()

	storeURL := strings.TrimSpace(os.Getenv("STORE_URL"))
	if storeURL == "" {
		return Config{}, errors.New("STORE_URL required")
	}

	addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		StoreURL:   storeURL,
		APIKey:     strings.TrimSpace(os.Getenv("API_KEY")),
		ListenAddr: addr,
	}, nil
}
