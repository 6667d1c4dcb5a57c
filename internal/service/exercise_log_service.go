package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workout-go/internal/dto"
	"workout-go/internal/models"
	"workout-go/internal/repository"

	"gorm.io/gorm"
)

// RecentLogLimit 返回的最近记录条数
const RecentLogLimit = 5

// ExerciseLogService 训练记录服务
type ExerciseLogService struct {
	logRepo     *repository.ExerciseLogRepository
	workoutRepo *repository.WorkoutRepository
	now         func() time.Time
}

// NewExerciseLogService 创建训练记录服务
func NewExerciseLogService(logRepo *repository.ExerciseLogRepository, workoutRepo *repository.WorkoutRepository) *ExerciseLogService {
	return &ExerciseLogService{
		logRepo:     logRepo,
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// Record 追加一条训练记录，动作必须属于当前用户
func (s *ExerciseLogService) Record(ctx context.Context, userID string, req *dto.CreateExerciseLogRequest) (*models.ExerciseLog, error) {
	_, err := s.workoutRepo.GetExerciseForUser(ctx, userID, req.ExerciseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询训练动作失败: %w", err)
	}

	log := &models.ExerciseLog{
		UserID:        userID,
		ExerciseID:    req.ExerciseID,
		Weight:        req.Weight,
		CompletedSets: req.CompletedSets,
		Date:          s.now().UTC(),
		Notes:         req.Notes,
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("保存训练记录失败: %w", err)
	}
	return log, nil
}

// Recent 获取当前用户某动作最近的训练记录，最新的在前
func (s *ExerciseLogService) Recent(ctx context.Context, userID, exerciseID string) ([]models.ExerciseLog, error) {
	logs, err := s.logRepo.ListRecent(ctx, userID, exerciseID, RecentLogLimit)
	if err != nil {
		return nil, fmt.Errorf("查询训练记录失败: %w", err)
	}
	return logs, nil
}
