package service

import (
	"io"
	"testing"
	"time"

	"workout-go/internal/config"
	"workout-go/internal/repository"
	"workout-go/internal/session"
	"workout-go/internal/testutil"
	"workout-go/internal/utils"
	"workout-go/pkg/limiter"

	"github.com/sirupsen/logrus"
)

type testServices struct {
	auth     *AuthService
	users    *UserService
	workouts *WorkoutService
	logs     *ExerciseLogService
	sessions *session.MemoryStore
	userRepo *repository.UserRepository
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := testutil.NewDB(t)
	logger := quietLogger()

	cfg := &config.Config{
		Admin: config.AdminConfig{Password: "admin123", Name: "Admin User"},
	}
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	logRepo := repository.NewExerciseLogRepository(db)
	sessions := session.NewMemoryStore(time.Hour)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)

	return &testServices{
		auth:     NewAuthService(userRepo, sessions, jwtManager, cfg, logger),
		users:    NewUserService(userRepo),
		workouts: NewWorkoutService(workoutRepo, limiter.NewLocalLimiter(1), logger),
		logs:     NewExerciseLogService(logRepo, workoutRepo),
		sessions: sessions,
		userRepo: userRepo,
	}
}
