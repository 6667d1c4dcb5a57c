package repository

import (
	"context"

	"workout-go/internal/models"

	"gorm.io/gorm"
)

// ExerciseLogRepository 训练记录数据访问层，只提供追加和查询
type ExerciseLogRepository struct {
	db *gorm.DB
}

// NewExerciseLogRepository 创建训练记录Repository
func NewExerciseLogRepository(db *gorm.DB) *ExerciseLogRepository {
	return &ExerciseLogRepository{db: db}
}

// Create 追加一条训练记录
func (r *ExerciseLogRepository) Create(ctx context.Context, log *models.ExerciseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListRecent 获取用户某动作最近的记录，按时间倒序
func (r *ExerciseLogRepository) ListRecent(ctx context.Context, userID, exerciseID string, limit int) ([]models.ExerciseLog, error) {
	logs := make([]models.ExerciseLog, 0, limit)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
