package dto

// CreateUserRequest 管理员创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,username"`
	Password string `json:"password" binding:"required,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
}
