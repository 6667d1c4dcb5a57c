package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"workout-go/internal/config"
	"workout-go/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withIdentity(identity *session.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		Origins:          []string{"http://localhost:5173"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
	}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := serve(r, http.MethodOptions, "/ping", http.Header{"Origin": {"http://localhost:5173"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))

	w = serve(r, http.MethodGet, "/ping", http.Header{"Origin": {"http://evil.example"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequireSessionAndAdmin(t *testing.T) {
	tests := []struct {
		name      string
		identity  *session.Identity
		userCode  int
		adminCode int
	}{
		{"anonymous", nil, http.StatusUnauthorized, http.StatusForbidden},
		{"user", &session.Identity{UserID: "u1", Username: "jane"}, http.StatusOK, http.StatusForbidden},
		{"admin", &session.Identity{UserID: "a1", Username: "admin", IsAdmin: true}, http.StatusOK, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(withIdentity(tt.identity))
			r.GET("/user", RequireSession(), func(c *gin.Context) {
				userID, ok := GetUserID(c)
				assert.True(t, ok)
				c.String(http.StatusOK, userID)
			})
			r.GET("/admin", AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

			assert.Equal(t, tt.userCode, serve(r, http.MethodGet, "/user", nil).Code)
			assert.Equal(t, tt.adminCode, serve(r, http.MethodGet, "/admin", nil).Code)
		})
	}
}
