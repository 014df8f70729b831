package config

import "github.com/urfave/cli/v2"

// DatabaseFlags binds the storage settings
func DatabaseFlags(c *Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-driver",
			Usage:       "Storage engine: sqlite or postgres",
			EnvVars:     []string{"DB_DRIVER"},
			Value:       c.DatabaseDriver,
			Destination: &c.DatabaseDriver,
		},
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "SQLite database file",
			EnvVars:     []string{"DB_PATH"},
			Value:       c.DatabasePath,
			Destination: &c.DatabasePath,
		},
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "PostgreSQL connection string",
			EnvVars:     []string{"DATABASE_URL"},
			Value:       c.DatabaseURL,
			Destination: &c.DatabaseURL,
		},
	}
}

// LogFlags binds the logging settings
func LogFlags(c *Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Minimum log level (debug, info, warn, error)",
			EnvVars:     []string{"LOG_LEVEL"},
			Value:       c.LogLevel,
			Destination: &c.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log output: console or json",
			EnvVars:     []string{"LOG_FORMAT"},
			Value:       c.LogFormat,
			Destination: &c.LogFormat,
		},
	}
}

// ServeFlags binds every setting the HTTP server needs
func ServeFlags(c *Config) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "Port to listen on",
			EnvVars:     []string{"PORT"},
			Value:       c.Port,
			Destination: &c.Port,
		},
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret used to sign session tokens",
			EnvVars:     []string{"JWT_SECRET"},
			Value:       c.JWTSecret,
			Destination: &c.JWTSecret,
		},
		&cli.StringFlag{
			Name:        "cors-origins",
			Usage:       "Comma separated list of allowed CORS origins",
			EnvVars:     []string{"CORS_ORIGINS"},
			Value:       c.CORSOrigins,
			Destination: &c.CORSOrigins,
		},
		&cli.StringFlag{
			Name:        "tls-dir",
			Usage:       "Directory holding (or receiving) a self-signed certificate; enables HTTPS",
			EnvVars:     []string{"TLS_DIR"},
			Value:       c.TLSDir,
			Destination: &c.TLSDir,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Grace period for in-flight requests on shutdown",
			EnvVars:     []string{"SHUTDOWN_TIMEOUT"},
			Value:       c.ShutdownTimeout,
			Destination: &c.ShutdownTimeout,
		},
	}
	flags = append(flags, DatabaseFlags(c)...)
	return append(flags, LogFlags(c)...)
}
