package handler

import (
	"workout-go/internal/dto"
	"workout-go/internal/middleware"
	"workout-go/internal/service"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ExerciseLogHandler 训练记录处理器
type ExerciseLogHandler struct {
	logService *service.ExerciseLogService
}

// NewExerciseLogHandler 创建训练记录处理器
func NewExerciseLogHandler(logService *service.ExerciseLogService) *ExerciseLogHandler {
	return &ExerciseLogHandler{logService: logService}
}

// CreateLog 保存一次训练记录
// @Router /api/exercise-logs [post]
func (h *ExerciseLogHandler) CreateLog(c *gin.Context) {
	var req dto.CreateExerciseLogRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	log, err := h.logService.Record(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "Failed to save log")
		return
	}

	utils.SuccessResponse(c, log)
}

// RecentLogs 获取某动作最近的训练记录
// @Router /api/exercise-logs/{exerciseId} [get]
func (h *ExerciseLogHandler) RecentLogs(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	logs, err := h.logService.Recent(c.Request.Context(), userID, c.Param("exerciseId"))
	if err != nil {
		writeError(c, err, "Failed to fetch logs")
		return
	}

	utils.SuccessResponse(c, logs)
}
