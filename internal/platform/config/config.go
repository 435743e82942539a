// Package config loads the chat server settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultHost      = "127.0.0.1"
	defaultPort      = "8000"
	defaultStaticDir = "src/static"
)

// Config holds the server settings.
type Config struct {
	Host      string
	Port      string
	StaticDir string
	// GeminiAPIKey is carried for a model-backed responder; the echo handler
	// does not use it.
	GeminiAPIKey string
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// HasGeminiKey reports whether an API key was supplied, without exposing it.
func (c Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != ""
}

// Load reads envFiles (".env" when none are given) into the process
// environment and builds a Config. Missing env files are ignored; variables
// already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Config{
		Host:         getenv("HOST", defaultHost),
		Port:         getenv("PORT", defaultPort),
		StaticDir:    getenv("STATIC_DIR", defaultStaticDir),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be 1-65535", c.Port)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
