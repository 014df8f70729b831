package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-backend/internal/auth"
	"blog-backend/internal/database"
	"blog-backend/internal/logging"
)

// Handler serves the blog HTTP API
type Handler struct {
	auth  *auth.Service
	posts *database.PostRepo
}

// NewHandler creates the API handlers
func NewHandler(authSvc *auth.Service, posts *database.PostRepo) *Handler {
	return &Handler{
		auth:  authSvc,
		posts: posts,
	}
}

// Health check
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// dashboard handles GET /dashboard
func (h *Handler) dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the dashboard",
	})
}

// currentUserID returns the identity resolved by auth.RequireAuth
func currentUserID(c echo.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return "", c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}
	return userID, nil
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": "invalid request body",
	})
}

// internalError logs err with the request logger and hides it from the client
func internalError(c echo.Context, op string, err error) error {
	log := logging.FromContext(c.Request().Context())
	log.Error().Err(err).Str("op", op).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
