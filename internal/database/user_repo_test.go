package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/models"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	user := &models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	_, err := uuid.Parse(user.ID)
	require.NoError(t, err, "user id should be a uuid")
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "first"}))

	err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "second"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	kept, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", kept.PasswordHash)
}

func TestUserRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	_, err := repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = repo.Update(ctx, &models.User{ID: uuid.NewString(), Username: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	alice := &models.User{Username: "alice", PasswordHash: "h1"}
	bob := &models.User{Username: "bob", PasswordHash: "h2"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	alice.Username = "alicia"
	alice.PasswordHash = "h3"
	require.NoError(t, repo.Update(ctx, alice))

	got, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", got.Username)
	assert.Equal(t, "h3", got.PasswordHash)

	bob.Username = "alicia"
	assert.ErrorIs(t, repo.Update(ctx, bob), ErrUserAlreadyExists)
}
