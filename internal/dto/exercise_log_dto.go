package dto

// CreateExerciseLogRequest 保存训练记录请求
type CreateExerciseLogRequest struct {
	ExerciseID    string  `json:"exerciseId" binding:"required"`
	Weight        *string `json:"weight" binding:"omitempty,max=50"`
	CompletedSets int     `json:"completedSets" binding:"min=0"`
	Notes         string  `json:"notes"`
}
