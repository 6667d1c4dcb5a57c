package middleware

import (
	"errors"

	"workout-go/internal/service"
	"workout-go/internal/session"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "session_identity"

// SessionMiddleware 会话中间件
// 从 Cookie 解析会话并写入上下文，无会话时继续处理，由后续中间件决定是否拒绝
func SessionMiddleware(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		identity, err := authService.ResolveSession(c.Request.Context(), token)
		if errors.Is(err, service.ErrUnauthenticated) {
			c.Next()
			return
		}
		if err != nil {
			_ = c.Error(err)
			utils.InternalError(c, "Session lookup failed")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireSession 要求已登录
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c); !ok {
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity 从上下文获取会话身份
func GetIdentity(c *gin.Context) (*session.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*session.Identity)
	return identity, ok
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return "", false
	}
	return identity.UserID, true
}

// IsAdmin 从上下文判断是否为管理员
func IsAdmin(c *gin.Context) bool {
	identity, ok := GetIdentity(c)
	return ok && identity.IsAdmin
}
