package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout 训练日模型，每个用户每天最多一条
type Workout struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_workouts_user_day" json:"user_id"`
	DayName   string    `gorm:"size:16;not null;uniqueIndex:idx_workouts_user_day" json:"day_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Exercises []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// TableName 指定表名
func (Workout) TableName() string {
	return "workouts"
}

// BeforeCreate 生成ID
func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Exercise 训练动作模型
type Exercise struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	WorkoutID    string    `gorm:"size:36;not null;index" json:"workout_id"`
	ExerciseName string    `gorm:"size:200;not null" json:"exercise_name"`
	Reps         string    `gorm:"size:50;not null" json:"reps"`
	Sets         string    `gorm:"size:50;not null" json:"sets"`
	Rest         string    `gorm:"size:50;not null" json:"rest"`
	Notes        string    `gorm:"type:text" json:"notes"`
	OrderIndex   int       `gorm:"not null" json:"order_index"`
	CreatedAt    time.Time `json:"-"`

	// 关联
	ExerciseLogs []ExerciseLog `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Exercise) TableName() string {
	return "exercises"
}

// BeforeCreate 生成ID
func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
