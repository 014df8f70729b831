package api

import (
	"github.com/labstack/echo/v4"

	"blog-backend/internal/auth"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, h *Handler, tokens *auth.TokenIssuer) {
	requireAuth := auth.RequireAuth(tokens)

	// Health check (public)
	e.GET("/health", healthCheck)

	// Auth routes (public)
	e.POST("/register", h.register)
	e.POST("/login", h.login)

	// Public feed
	e.GET("/posts", h.listPosts)

	// Protected routes. Middleware is attached per route so unknown paths still 404.
	e.GET("/dashboard", h.dashboard, requireAuth)

	e.GET("/user-info", h.getUserInfo, requireAuth)
	e.PATCH("/user-info", h.updateUserInfo, requireAuth)
	e.GET("/user-info/posts", h.listMyPosts, requireAuth)

	e.POST("/posts", h.createPost, requireAuth)
	e.PATCH("/posts/:id", h.editPost, requireAuth)
	e.DELETE("/posts/:id", h.deletePost, requireAuth)
}
