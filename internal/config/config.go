// Package config holds runtime settings for the blog backend, populated
// from command-line flags that each fall back to an environment variable.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds runtime settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on.
//   - JWTSecret: HMAC secret signing session tokens (HS256). Required to serve.
//   - DatabaseDriver: "sqlite" (embedded file) or "postgres".
//   - DatabasePath / DatabaseURL: SQLite file / PostgreSQL DSN.
//   - CORSOrigins: comma separated allowed origins, "*" for any.
//   - LogLevel / LogFormat: zerolog level and "console" or "json".
//   - TLSDir: when set, a self-signed certificate is kept there and HTTPS is served.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	Port            string
	JWTSecret       string
	DatabaseDriver  string
	DatabasePath    string
	DatabaseURL     string
	CORSOrigins     string
	LogLevel        string
	LogFormat       string
	TLSDir          string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
// JWTSecret is intentionally left empty.
func (c *Config) LoadDefaults() {
	c.Port = "5000"
	c.DatabaseDriver = "sqlite"
	c.DatabasePath = "./blog.db"
	c.CORSOrigins = "*"
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.ShutdownTimeout = 10 * time.Second
}

// New returns a Config with defaults applied
func New() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// AllowedOrigins splits CORSOrigins
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// ValidateDatabase checks the storage settings
func (c *Config) ValidateDatabase() error {
	switch c.DatabaseDriver {
	case "sqlite":
		if c.DatabasePath == "" {
			return errors.New("config: sqlite requires a database path")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("config: postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown database driver %q", c.DatabaseDriver)
	}
	return nil
}

// Validate checks everything needed to serve requests
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.Port == "" {
		return errors.New("config: port must be set")
	}
	return c.ValidateDatabase()
}
