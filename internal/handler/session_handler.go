package handler

import (
	"net/http"

	"workout-go/internal/config"
	"workout-go/internal/dto"
	"workout-go/internal/middleware"
	"workout-go/internal/service"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
	cookie      config.SessionConfig
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// Login 用户登录，成功后写入会话 Cookie
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.BadRequest(c, "Username and password are required")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "Login failed")
		return
	}

	h.setCookie(c, token, int(h.cookie.GetExpireDuration().Seconds()))
	utils.SuccessResponse(c, user)
}

// Logout 销毁会话并清除 Cookie，未登录也返回成功
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.CookieName)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		_ = c.Error(err)
		utils.InternalError(c, "Logout failed")
		return
	}

	h.setCookie(c, "", -1)
	utils.SuccessAck(c)
}

// Session 获取当前会话用户
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err, "Failed to load session")
		return
	}

	utils.SuccessResponse(c, user)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}
