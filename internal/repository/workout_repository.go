package repository

import (
	"context"

	"workout-go/internal/defaultplan"
	"workout-go/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkoutRepository 训练日和训练动作数据访问层
type WorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository 创建训练Repository
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// ListByUser 获取用户所有训练日，按 day_name 字典序，动作按 order_index 排序
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0, len(defaultplan.Days))
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		Order("day_name ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []models.Exercise{}
		}
	}
	return workouts, nil
}

// CountByUser 统计用户的训练日数量
func (r *WorkoutRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Workout{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// SeedDay 在一个事务中创建某天的训练日及其默认动作
// (user_id, day_name) 已存在时不做任何修改，返回 false
func (r *WorkoutRepository) SeedDay(ctx context.Context, userID, day string, entries []defaultplan.Entry) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		workout := &models.Workout{UserID: userID, DayName: day}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_name"}},
			DoNothing: true,
		}).Create(workout)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if len(entries) == 0 {
			return nil
		}
		exercises := make([]models.Exercise, 0, len(entries))
		for i, e := range entries {
			exercises = append(exercises, models.Exercise{
				WorkoutID:    workout.ID,
				ExerciseName: e.Exercise,
				Reps:         e.Reps,
				Sets:         e.Sets,
				Rest:         e.Rest,
				Notes:        e.Notes,
				OrderIndex:   i,
			})
		}
		return tx.Create(&exercises).Error
	})
	return created, err
}

// GetWorkout 根据ID获取训练日（不含动作）
func (r *WorkoutRepository) GetWorkout(ctx context.Context, id string) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// CreateExercise 创建训练动作，不调整已有动作的顺序
func (r *WorkoutRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

// GetExerciseForUser 获取属于某用户的训练动作
func (r *WorkoutRepository) GetExerciseForUser(ctx context.Context, userID, exerciseID string) (*models.Exercise, error) {
	var exercise models.Exercise
	owned := r.db.Model(&models.Workout{}).Select("id").Where("user_id = ?", userID)
	err := r.db.WithContext(ctx).
		Where("id = ? AND workout_id IN (?)", exerciseID, owned).
		First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// DeleteExercise 删除训练动作，关联的训练记录由外键级联删除
func (r *WorkoutRepository) DeleteExercise(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Exercise{}).Error
}
