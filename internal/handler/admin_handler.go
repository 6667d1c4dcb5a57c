package handler

import (
	"workout-go/internal/dto"
	"workout-go/internal/service"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员处理器，负责账户管理
type AdminHandler struct {
	userService *service.UserService
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers 获取所有用户
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch users")
		return
	}

	utils.SuccessResponse(c, users)
}

// CreateUser 创建用户
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "Failed to create user")
		return
	}

	utils.SuccessResponse(c, user)
}

// DeleteUser 按用户名删除用户
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("username")); err != nil {
		writeError(c, err, "Failed to delete user")
		return
	}

	utils.SuccessAck(c)
}
