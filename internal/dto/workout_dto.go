package dto

// CreateExerciseRequest 新增训练动作请求
type CreateExerciseRequest struct {
	WorkoutID    string `json:"workoutId" binding:"required"`
	ExerciseName string `json:"exerciseName" binding:"required,max=200"`
	Reps         string `json:"reps" binding:"required,max=50"`
	Sets         string `json:"sets" binding:"required,max=50"`
	Rest         string `json:"rest" binding:"required,max=50"`
	Notes        string `json:"notes"`
	OrderIndex   *int   `json:"orderIndex" binding:"required,min=0"`
}
