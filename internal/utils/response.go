package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应格式
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody 无数据操作的成功响应
type SuccessBody struct {
	Success bool `json:"success"`
}

// SuccessResponse 成功响应，直接输出数据
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessAck 成功响应 {"success": true}
func SuccessAck(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}
