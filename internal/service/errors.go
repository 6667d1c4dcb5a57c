package service

import "errors"

// 业务错误，由 handler 映射为HTTP状态码
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("admin access required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrProtectedAccount   = errors.New("cannot delete admin user")
	ErrNotFound           = errors.New("not found")
)
