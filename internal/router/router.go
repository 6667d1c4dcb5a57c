package router

import (
	"net/http"

	"workout-go/internal/config"
	"workout-go/internal/handler"
	"workout-go/internal/middleware"
	"workout-go/internal/repository"
	"workout-go/internal/service"
	"workout-go/internal/session"
	"workout-go/internal/utils"
	"workout-go/pkg/limiter"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	sessions session.Store,
	seedLimiter limiter.Limiter,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := utils.InitValidator(); err != nil {
		logger.Warnf("注册验证规则失败: %v", err)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Workout Tracker API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	logRepo := repository.NewExerciseLogRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, sessions, jwtManager, cfg, logger)
	userService := service.NewUserService(userRepo)
	workoutService := service.NewWorkoutService(workoutRepo, seedLimiter, logger)
	logService := service.NewExerciseLogService(logRepo, workoutRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, cfg.Session)
	adminHandler := handler.NewAdminHandler(userService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	logHandler := handler.NewExerciseLogHandler(logService)

	// API路由组
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(authService, cfg.Session.CookieName))
	{
		// 认证
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
		}

		// 管理员接口
		adminGroup := api.Group("/users")
		adminGroup.Use(middleware.AdminMiddleware())
		{
			adminGroup.GET("", adminHandler.ListUsers)
			adminGroup.POST("", adminHandler.CreateUser)
			adminGroup.DELETE("/:username", adminHandler.DeleteUser)
		}

		// 需要登录的接口
		authorized := api.Group("")
		authorized.Use(middleware.RequireSession())
		{
			authorized.GET("/workouts", workoutHandler.ListWorkouts)

			authorized.POST("/exercises", workoutHandler.CreateExercise)
			authorized.DELETE("/exercises/:id", workoutHandler.DeleteExercise)

			authorized.POST("/exercise-logs", logHandler.CreateLog)
			authorized.GET("/exercise-logs/:exerciseId", logHandler.RecentLogs)
		}
	}

	return r
}
