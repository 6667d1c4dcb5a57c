package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workout-go/internal/defaultplan"
	"workout-go/internal/dto"
	"workout-go/internal/models"
	"workout-go/internal/repository"
	"workout-go/pkg/limiter"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	seedLockTimeout  = 10 * time.Second
	seedLockInterval = 50 * time.Millisecond
)

// WorkoutService 训练计划服务
type WorkoutService struct {
	workoutRepo *repository.WorkoutRepository
	seedLimiter limiter.Limiter
	logger      *logrus.Logger
}

// NewWorkoutService 创建训练计划服务
// seedLimiter 的最大并发必须为 1，用作按用户的播种锁
func NewWorkoutService(workoutRepo *repository.WorkoutRepository, seedLimiter limiter.Limiter, logger *logrus.Logger) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		seedLimiter: seedLimiter,
		logger:      logger,
	}
}

// GetWorkouts 获取用户的一周训练计划，首次访问时写入默认计划
func (s *WorkoutService) GetWorkouts(ctx context.Context, userID string) ([]models.Workout, error) {
	if err := s.EnsureDefaultPlan(ctx, userID); err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询训练计划失败: %w", err)
	}
	return workouts, nil
}

// EnsureDefaultPlan 用户缺少训练日时按默认模板补齐，可重复调用
func (s *WorkoutService) EnsureDefaultPlan(ctx context.Context, userID string) error {
	count, err := s.workoutRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("统计训练日失败: %w", err)
	}
	if count >= int64(len(defaultplan.Days)) {
		return nil
	}

	key := "seed:" + userID
	lockCtx, cancel := context.WithTimeout(ctx, seedLockTimeout)
	defer cancel()
	if err := limiter.AcquireWait(lockCtx, s.seedLimiter, key, seedLockInterval); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("等待播种锁超时")
		return fmt.Errorf("获取播种锁失败: %w", err)
	}
	defer s.seedLimiter.Release(context.WithoutCancel(ctx), key)

	// 等锁期间可能已被其他请求完成
	count, err = s.workoutRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("统计训练日失败: %w", err)
	}
	if count >= int64(len(defaultplan.Days)) {
		return nil
	}

	seeded := 0
	for _, day := range defaultplan.Days {
		created, err := s.workoutRepo.SeedDay(ctx, userID, day, defaultplan.ForDay(day))
		if err != nil {
			return fmt.Errorf("写入默认训练日 %s 失败: %w", day, err)
		}
		if created {
			seeded++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"days":    seeded,
	}).Info("已写入默认训练计划")
	return nil
}

// AddExercise 向用户自己的训练日追加动作
func (s *WorkoutService) AddExercise(ctx context.Context, userID string, req *dto.CreateExerciseRequest) (*models.Exercise, error) {
	workout, err := s.workoutRepo.GetWorkout(ctx, req.WorkoutID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询训练日失败: %w", err)
	}
	if workout.UserID != userID {
		return nil, ErrNotFound
	}

	exercise := &models.Exercise{
		WorkoutID:    workout.ID,
		ExerciseName: req.ExerciseName,
		Reps:         req.Reps,
		Sets:         req.Sets,
		Rest:         req.Rest,
		Notes:        req.Notes,
		OrderIndex:   *req.OrderIndex,
	}
	if err := s.workoutRepo.CreateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("创建训练动作失败: %w", err)
	}
	return exercise, nil
}

// DeleteExercise 删除用户自己的训练动作
func (s *WorkoutService) DeleteExercise(ctx context.Context, userID, exerciseID string) error {
	_, err := s.workoutRepo.GetExerciseForUser(ctx, userID, exerciseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("查询训练动作失败: %w", err)
	}

	if err := s.workoutRepo.DeleteExercise(ctx, exerciseID); err != nil {
		return fmt.Errorf("删除训练动作失败: %w", err)
	}
	return nil
}
