package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseLog 训练记录模型，只追加不修改
type ExerciseLog struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;not null;index:idx_exercise_logs_lookup,priority:1" json:"user_id"`
	ExerciseID    string    `gorm:"size:36;not null;index:idx_exercise_logs_lookup,priority:2" json:"exercise_id"`
	Weight        *string   `gorm:"size:50" json:"weight"`
	CompletedSets int       `gorm:"not null;default:0" json:"completed_sets"`
	Date          time.Time `gorm:"not null;index:idx_exercise_logs_lookup,priority:3" json:"date"`
	Notes         string    `gorm:"type:text" json:"notes"`
}

// TableName 指定表名
func (ExerciseLog) TableName() string {
	return "exercise_logs"
}

// BeforeCreate 生成ID
func (l *ExerciseLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
