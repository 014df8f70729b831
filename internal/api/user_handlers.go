package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
)

// getUserInfo handles GET /user-info
func (h *Handler) getUserInfo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil || userID == "" {
		return err
	}

	user, err := h.auth.Profile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "User not found",
			})
		}
		return internalError(c, "get user info", err)
	}

	return c.JSON(http.StatusOK, user)
}

// updateUserInfo handles PATCH /user-info. Only username and password are accepted.
func (h *Handler) updateUserInfo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil || userID == "" {
		return err
	}

	var req models.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.auth.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "User not found",
			})
		case errors.Is(err, auth.ErrUserExists), errors.Is(err, auth.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error":   "Update failed",
				"details": err.Error(),
			})
		default:
			return internalError(c, "update user info", err)
		}
	}

	return c.JSON(http.StatusOK, user)
}
