package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.True(t, IsPasswordHash(hash))
	assert.NotEqual(t, "pw123", hash)
	assert.NoError(t, CheckPassword("pw123", hash))
	assert.Error(t, CheckPassword("wrong", hash))
	assert.False(t, IsPasswordHash("admin123"))
}

func TestJWTManagerRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)

	token, err := m.GenerateToken("session-1")
	require.NoError(t, err)

	id, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestJWTManagerRejects(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)
	token, err := m.GenerateToken("session-1")
	require.NoError(t, err)

	other := NewJWTManager("other-secret", "HS256", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err, "wrong key")

	expired := NewJWTManager("secret", "HS256", -time.Minute)
	old, err := expired.GenerateToken("session-2")
	require.NoError(t, err)
	_, err = m.ValidateToken(old)
	assert.Error(t, err, "expired")

	_, err = m.ValidateToken("not-a-token")
	assert.Error(t, err)
}

type bindTarget struct {
	Username string `json:"username" binding:"required,username"`
	Count    *int   `json:"count" binding:"required,min=0"`
}

func bindRequest(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, InitValidator())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var target bindTarget
	return BindJSON(c, &target)
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"username":"jane","count":0}`},
		{name: "unknown field", body: `{"username":"jane","count":1,"isAdmin":true}`, wantErr: "unknown field"},
		{name: "missing field", body: `{"username":"jane"}`, wantErr: "count is required"},
		{name: "bad username", body: `{"username":"a b","count":1}`, wantErr: "username may only contain"},
		{name: "negative", body: `{"username":"jane","count":-1}`, wantErr: "count must be at least 0"},
		{name: "empty", body: ``, wantErr: "request body is required"},
		{name: "malformed", body: `{"username":`, wantErr: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindRequest(t, tt.body)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
