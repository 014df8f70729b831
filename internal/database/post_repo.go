package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/models"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepo handles post database operations
type PostRepo struct {
	db *DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create inserts a new post, assigning its ID and timestamps
func (r *PostRepo) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, r.db.rebind(`
		INSERT INTO posts (id, title, post_text, author_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), post.ID, post.Title, post.PostText, post.AuthorID, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID. Malformed IDs are reported as not found.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPostNotFound
	}

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, r.db.rebind(`
		SELECT id, title, post_text, author_id, created_at, updated_at
		FROM posts WHERE id = ?
	`), id).Scan(
		&post.ID, &post.Title, &post.PostText, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// ListByAuthor retrieves the posts written by one user, oldest first
func (r *PostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, r.db.rebind(`
		SELECT id, title, post_text, author_id, created_at, updated_at
		FROM posts WHERE author_id = ? ORDER BY created_at, id
	`), authorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(
			&post.ID, &post.Title, &post.PostText, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// List retrieves every post with its author resolved, oldest first
func (r *PostRepo) List(ctx context.Context) ([]*models.PostWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.post_text, p.created_at, p.updated_at,
		       u.id, u.username, u.created_at, u.updated_at
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var posts []*models.PostWithAuthor
	for rows.Next() {
		post := &models.PostWithAuthor{}
		var (
			authorID, authorName         sql.NullString
			authorCreated, authorUpdated sql.NullTime
		)
		if err := rows.Scan(
			&post.ID, &post.Title, &post.PostText, &post.CreatedAt, &post.UpdatedAt,
			&authorID, &authorName, &authorCreated, &authorUpdated,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if authorID.Valid {
			post.Author = &models.User{
				ID:        authorID.String,
				Username:  authorName.String,
				CreatedAt: authorCreated.Time,
				UpdatedAt: authorUpdated.Time,
			}
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// Update writes title and text of a post. The author filter guarantees
// only the recorded author's post is touched; otherwise ErrPostNotFound.
func (r *PostRepo) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, r.db.rebind(`
		UPDATE posts SET
			title = ?,
			post_text = ?,
			updated_at = ?
		WHERE id = ? AND author_id = ?
	`), post.Title, post.PostText, post.UpdatedAt, post.ID, post.AuthorID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(result, ErrPostNotFound)
}

// Delete removes a post written by authorID
func (r *PostRepo) Delete(ctx context.Context, id, authorID string) error {
	result, err := r.db.ExecContext(ctx, r.db.rebind(
		"DELETE FROM posts WHERE id = ? AND author_id = ?",
	), id, authorID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(result, ErrPostNotFound)
}

func expectOneRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
