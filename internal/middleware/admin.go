package middleware

import (
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware 管理员权限中间件，未登录同样返回 403
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
