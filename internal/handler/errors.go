package handler

import (
	"errors"

	"workout-go/internal/service"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// writeError 把业务错误映射为HTTP响应
// 未识别的错误按存储故障处理：记录到 c.Errors，客户端只收到 fallback 信息
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		utils.BadRequest(c, "Username already exists")
	case errors.Is(err, service.ErrProtectedAccount):
		utils.BadRequest(c, "Cannot delete admin user")
	case errors.Is(err, service.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, service.ErrUnauthenticated):
		utils.Unauthorized(c, "Not authenticated")
	case errors.Is(err, service.ErrForbidden):
		utils.Forbidden(c, "Admin access required")
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, "Not found")
	default:
		_ = c.Error(err)
		utils.InternalError(c, fallback)
	}
}
