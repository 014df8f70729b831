package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
)

// register handles POST /register
func (h *Handler) register(c echo.Context) error {
	var req models.Credentials
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No username or password provided",
		})
	}

	if _, err := h.auth.Register(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "User already exists",
			})
		case errors.Is(err, auth.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		default:
			return internalError(c, "register", err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User created",
	})
}

// login handles POST /login
func (h *Handler) login(c echo.Context) error {
	var req models.Credentials
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No username or password provided",
		})
	}

	token, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "User not found",
			})
		case errors.Is(err, auth.ErrWrongPassword):
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "Wrong password",
			})
		default:
			return internalError(c, "login", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token": token,
	})
}
