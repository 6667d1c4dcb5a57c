package repository

import (
	"context"
	"errors"
	"testing"

	"workout-go/internal/models"
	"workout-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	first := &models.User{Username: "jane", PasswordHash: "h1", Name: "Jane"}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.User{Username: "jane", PasswordHash: "h2", Name: "Other"})
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)

	stored, err := repo.GetByUsername(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Jane", stored.Name)
}

func TestUserRepositoryListAndDelete(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &models.User{Username: name, PasswordHash: "h", Name: name}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	require.NoError(t, repo.DeleteByUsername(ctx, "b"))
	require.NoError(t, repo.DeleteByUsername(ctx, "missing"))

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = repo.GetByUsername(ctx, "b")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
