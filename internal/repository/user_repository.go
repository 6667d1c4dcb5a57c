package repository

import (
	"context"

	"workout-go/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户，用户名重复时返回 ErrDuplicate
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List 按创建顺序获取所有用户
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

// DeleteByUsername 根据用户名删除用户，关联的训练和记录由外键级联删除
func (r *UserRepository) DeleteByUsername(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Where("username = ?", username).Delete(&models.User{}).Error
}
