package service

import (
	"context"
	"errors"
	"fmt"

	"workout-go/internal/config"
	"workout-go/internal/dto"
	"workout-go/internal/models"
	"workout-go/internal/repository"
	"workout-go/internal/session"
	"workout-go/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuthService 认证与会话服务
type AuthService struct {
	userRepo   *repository.UserRepository
	sessions   session.Store
	jwtManager *utils.JWTManager
	cfg        *config.Config
	logger     *logrus.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	userRepo *repository.UserRepository,
	sessions session.Store,
	jwtManager *utils.JWTManager,
	cfg *config.Config,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtManager: jwtManager,
		cfg:        cfg,
		logger:     logger,
	}
}

// Login 用户登录，成功返回用户信息和会话Token
// 用户不存在和密码错误返回同一个错误
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionUser, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CheckDummyPassword(req.Password)
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("查询用户失败: %w", err)
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, session.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return nil, "", fmt.Errorf("创建会话失败: %w", err)
	}

	token, err := s.jwtManager.GenerateToken(sessionID)
	if err != nil {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, "", fmt.Errorf("生成Token失败: %w", err)
	}

	return toSessionUser(user), token, nil
}

// Logout 销毁会话，Token 为空或无效时直接返回成功
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// ResolveSession 解析会话Token，无效或过期返回 ErrUnauthenticated
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*session.Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sessionID, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	identity, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("读取会话失败: %w", err)
	}
	return &identity, nil
}

// CurrentUser 重新读取会话用户，用户已被删除时返回 ErrUnauthenticated
func (s *AuthService) CurrentUser(ctx context.Context, identity *session.Identity) (*dto.SessionUser, error) {
	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return toSessionUser(user), nil
}

// InitAdmin 初始化管理员账户，已存在时跳过
func (s *AuthService) InitAdmin(ctx context.Context) error {
	_, err := s.userRepo.GetByUsername(ctx, models.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("查询管理员失败: %w", err)
	}

	// 配置中的密码可以直接是bcrypt哈希
	passwordHash := s.cfg.Admin.Password
	if !utils.IsPasswordHash(passwordHash) {
		hashedPassword, err := utils.HashPassword(s.cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("密码哈希失败: %w", err)
		}
		passwordHash = hashedPassword
	}

	user := &models.User{
		Username:     models.AdminUsername,
		PasswordHash: passwordHash,
		Name:         s.cfg.Admin.Name,
		IsAdmin:      true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// 其他实例同时完成了初始化
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	s.logger.WithField("username", user.Username).Info("已创建默认管理员账户")
	return nil
}

func toSessionUser(user *models.User) *dto.SessionUser {
	return &dto.SessionUser{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		IsAdmin:  user.IsAdmin,
	}
}
