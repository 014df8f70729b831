package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"blog-backend/internal/auth"
	"blog-backend/internal/logging"
)

// ServerConfig holds the HTTP-level settings of the API
type ServerConfig struct {
	AllowOrigins []string
	BodyLimit    string
}

// NewServer builds the echo instance with middleware and routes
func NewServer(cfg ServerConfig, h *Handler, tokens *auth.TokenIssuer, logger zerolog.Logger) *echo.Echo {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = "1M"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(contextLogger(logger))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	RegisterRoutes(e, h, tokens)

	return e
}

// contextLogger puts a request scoped logger into the request context
func contextLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLogger := logger.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(logging.WithLogger(req.Context(), reqLogger)))
			return next(c)
		}
	}
}

// requestLogger writes one line per request with the zerolog logger from the context
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log := logging.FromContext(c.Request().Context())
			evt := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			if userID, ok := auth.UserIDFromContext(c); ok {
				evt = evt.Str("user_id", userID)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// ListenConfig describes where and how the server listens
type ListenConfig struct {
	Addr            string
	CertFile        string
	KeyFile         string
	ShutdownTimeout time.Duration
}

// Serve runs e until ctx is cancelled, then shuts it down gracefully
func Serve(ctx context.Context, e *echo.Echo, cfg ListenConfig) error {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	log := logging.FromContext(ctx).With().Str("server.addr", cfg.Addr).Logger()

	errc := make(chan error, 1)
	go func() {
		var err error
		if cfg.CertFile != "" {
			log.Info().Msg("Starting HTTPS server")
			err = e.StartTLS(cfg.Addr, cfg.CertFile, cfg.KeyFile)
		} else {
			log.Info().Msg("Starting HTTP server")
			err = e.Start(cfg.Addr)
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Initiating shutdown process")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Shutdown completed")
	return <-errc
}
