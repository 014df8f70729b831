package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-backend/internal/auth"
	"blog-backend/internal/database"
	"blog-backend/internal/models"
)

// createPost handles POST /posts
func (h *Handler) createPost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil || userID == "" {
		return err
	}

	var req models.PostInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing field",
		})
	}

	post := &models.Post{
		Title:    req.Title,
		PostText: req.PostText,
		AuthorID: userID,
	}
	if err := h.posts.Create(c.Request().Context(), post); err != nil {
		return internalError(c, "create post", err)
	}

	return c.JSON(http.StatusOK, post)
}

// listMyPosts handles GET /user-info/posts
func (h *Handler) listMyPosts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil || userID == "" {
		return err
	}

	posts, err := h.posts.ListByAuthor(c.Request().Context(), userID)
	if err != nil {
		return internalError(c, "list user posts", err)
	}
	if len(posts) == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "You have no posts yet",
		})
	}

	return c.JSON(http.StatusOK, models.NewPostList(posts))
}

// listPosts handles GET /posts
func (h *Handler) listPosts(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return internalError(c, "list posts", err)
	}
	if len(posts) == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "There are no posts yet",
		})
	}

	return c.JSON(http.StatusOK, models.NewPostList(posts))
}

// editPost handles PATCH /posts/:id. Only the author may edit.
func (h *Handler) editPost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil || userID == "" {
		return err
	}

	var req models.PostInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing fields",
		})
	}

	id := c.Param("id")
	post, err := h.ownedPost(c, id, userID, "Cannot edit posts that you don't own")
	if post == nil {
		return err
	}

	post.Title = req.Title
	post.PostText = req.PostText
	if err := h.posts.Update(c.Request().Context(), post); err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return postNotFound(c, id)
		}
		return internalError(c, "edit post", err)
	}

	return c.JSON(http.StatusOK, post)
}

// deletePost handles DELETE /posts/:id. Only the author may delete.
func (h *Handler) deletePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil || userID == "" {
		return err
	}

	id := c.Param("id")
	post, err := h.ownedPost(c, id, userID, "Cannot delete posts that you don't own")
	if post == nil {
		return err
	}

	if err := h.posts.Delete(c.Request().Context(), post.ID, userID); err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return postNotFound(c, id)
		}
		return internalError(c, "delete post", err)
	}

	return c.JSON(http.StatusOK, post)
}

// ownedPost loads a post and applies the ownership guard. When the post is
// nil the response has already been written and the returned error is the
// handler's result.
func (h *Handler) ownedPost(c echo.Context, id, userID, forbidden string) (*models.Post, error) {
	post, err := h.posts.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return nil, postNotFound(c, id)
		}
		return nil, internalError(c, "get post", err)
	}

	if err := auth.Authorize(userID, post.AuthorID); err != nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{
			"error": forbidden,
		})
	}

	return post, nil
}

func postNotFound(c echo.Context, id string) error {
	return c.JSON(http.StatusNotFound, map[string]string{
		"error": fmt.Sprintf("Post with id: %s was not found", id),
	})
}
