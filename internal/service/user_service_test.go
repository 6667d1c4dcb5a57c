package service

import (
	"context"
	"testing"

	"workout-go/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	first, err := s.users.CreateUser(ctx, &dto.CreateUserRequest{Username: "jane", Password: "pw123", Name: "Jane Smith"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.IsAdmin)
	assert.NotEqual(t, "pw123", first.PasswordHash)

	_, err = s.users.CreateUser(ctx, &dto.CreateUserRequest{Username: "jane", Password: "other", Name: "Impostor"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// 第一个用户不受影响
	user, _, err := s.auth.Login(ctx, &dto.LoginRequest{Username: "jane", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
	assert.Equal(t, "Jane Smith", user.Name)
}

func TestDeleteAdminIsProtected(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	require.NoError(t, s.auth.InitAdmin(ctx))

	assert.ErrorIs(t, s.users.DeleteUser(ctx, "admin"), ErrProtectedAccount)

	users, err := s.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteUserAndListOrder(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	require.NoError(t, s.auth.InitAdmin(ctx))

	for _, name := range []string{"first", "second"} {
		_, err := s.users.CreateUser(ctx, &dto.CreateUserRequest{Username: name, Password: "pw", Name: name})
		require.NoError(t, err)
	}

	users, err := s.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "first", users[1].Username)
	assert.Equal(t, "second", users[2].Username)

	require.NoError(t, s.users.DeleteUser(ctx, "first"))
	assert.NoError(t, s.users.DeleteUser(ctx, "never-existed"))

	users, err = s.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
