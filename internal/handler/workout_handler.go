package handler

import (
	"workout-go/internal/dto"
	"workout-go/internal/middleware"
	"workout-go/internal/service"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler 训练计划处理器
type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

// NewWorkoutHandler 创建训练计划处理器
func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// ListWorkouts 获取当前用户的训练计划，首次访问自动生成默认计划
// @Router /api/workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "Failed to fetch workouts")
		return
	}

	utils.SuccessResponse(c, workouts)
}

// CreateExercise 向训练日添加动作
// @Router /api/exercises [post]
func (h *WorkoutHandler) CreateExercise(c *gin.Context) {
	var req dto.CreateExerciseRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	exercise, err := h.workoutService.AddExercise(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "Failed to create exercise")
		return
	}

	utils.SuccessResponse(c, exercise)
}

// DeleteExercise 删除训练动作
// @Router /api/exercises/{id} [delete]
func (h *WorkoutHandler) DeleteExercise(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.workoutService.DeleteExercise(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete exercise")
		return
	}

	utils.SuccessAck(c)
}
