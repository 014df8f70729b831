package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks a request that is missing required fields
var ErrValidation = errors.New("validation failed")

// Post is a blog post owned by its author
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	PostText  string    `json:"postText"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostWithAuthor is a post whose author reference is resolved to the user.
// Author is nil when the referenced user no longer exists.
type PostWithAuthor struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	PostText  string    `json:"postText"`
	Author    *User     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostInput is the request body for creating and editing posts.
// Only these fields are ever written from a request.
type PostInput struct {
	Title    string `json:"title"`
	PostText string `json:"postText"`
}

// Validate requires both title and text
func (p PostInput) Validate() error {
	if p.Title == "" || p.PostText == "" {
		return fmt.Errorf("%w: title and postText are required", ErrValidation)
	}
	return nil
}

// PostList is the response body for post listings
type PostList[T any] struct {
	Count int `json:"count"`
	Posts []T `json:"posts"`
}

// NewPostList wraps posts with their count
func NewPostList[T any](posts []T) PostList[T] {
	return PostList[T]{Count: len(posts), Posts: posts}
}
