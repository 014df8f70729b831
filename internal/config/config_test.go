package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := New()
	app := &cli.App{
		Name:   "test",
		Flags:  ServeFlags(cfg),
		Action: func(*cli.Context) error { return nil },
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	c := New()

	assert.Equal(t, "5000", c.Port)
	assert.Equal(t, ":5000", c.Addr())
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "./blog.db", c.DatabasePath)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Empty(t, c.JWTSecret)
}

func TestFlags(t *testing.T) {
	c := parse(t,
		"--port", "8081",
		"--jwt-secret", "s3cret",
		"--db-driver", "postgres",
		"--database-url", "postgres://localhost/blog",
		"--cors-origins", "http://a.test, http://b.test",
		"--shutdown-timeout", "3s",
	)

	assert.Equal(t, ":8081", c.Addr())
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, "postgres", c.DatabaseDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins())
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.NoError(t, c.Validate())
}

func TestEnvVars(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PATH", "/tmp/blog-test.db")
	t.Setenv("LOG_FORMAT", "json")

	c := parse(t)

	assert.Equal(t, "7000", c.Port)
	assert.Equal(t, "from-env", c.JWTSecret)
	assert.Equal(t, "/tmp/blog-test.db", c.DatabasePath)
	assert.Equal(t, "json", c.LogFormat)
}

func TestValidate(t *testing.T) {
	c := New()
	assert.Error(t, c.Validate(), "missing secret")

	c.JWTSecret = "x"
	assert.NoError(t, c.Validate())

	c.DatabaseDriver = "postgres"
	assert.Error(t, c.Validate(), "postgres without url")

	c.DatabaseURL = "postgres://localhost/blog"
	assert.NoError(t, c.Validate())

	c.DatabaseDriver = "mongo"
	assert.Error(t, c.Validate())
}
