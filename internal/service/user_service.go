package service

import (
	"context"
	"errors"
	"fmt"

	"workout-go/internal/dto"
	"workout-go/internal/models"
	"workout-go/internal/repository"
	"workout-go/internal/utils"
)

// UserService 用户管理服务
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService 创建用户管理服务
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers 按创建顺序获取所有用户
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser 创建普通用户
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		IsAdmin:      false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// DeleteUser 删除用户，管理员账户不可删除
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	if username == models.AdminUsername {
		return ErrProtectedAccount
	}
	if err := s.userRepo.DeleteByUsername(ctx, username); err != nil {
		return fmt.Errorf("删除用户失败: %w", err)
	}
	return nil
}
