package commands

import (
	"context"
	"fmt"
	"time"

	"workout-go/internal/config"
	"workout-go/internal/repository"
	"workout-go/internal/router"
	"workout-go/internal/service"
	"workout-go/internal/session"
	"workout-go/internal/utils"
	"workout-go/pkg/limiter"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// seedLockTTL 播种锁的过期时间，持有进程崩溃后自动释放
const seedLockTTL = 30 * time.Second

// serveCmd 启动HTTP服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}

	// 初始化Redis
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("连接Redis失败: %w", err)
		}
		defer redisClient.Close()
	}

	sessions := newSessionStore(cfg, redisClient)
	seedLimiter := newSeedLimiter(cfg, redisClient, logger)

	// 初始化工具
	jwtManager := utils.NewJWTManager(
		cfg.Session.SecretKey,
		cfg.Session.Algorithm,
		cfg.Session.GetExpireDuration(),
	)

	// 初始化管理员账户
	authService := service.NewAuthService(repository.NewUserRepository(db), sessions, jwtManager, cfg, logger)
	if err := authService.InitAdmin(context.Background()); err != nil {
		return fmt.Errorf("初始化管理员失败: %w", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, jwtManager, logger, db, sessions, seedLimiter)

	addr := cfg.Server.GetAddress()
	logger.WithFields(logrus.Fields{
		"addr":          addr,
		"db_driver":     cfg.Database.Driver,
		"session_store": cfg.Session.Store,
	}).Info("服务器启动")

	if !cfg.Server.ProductionMode && cfg.Admin.Password == "admin123" {
		logger.Warn("管理员仍在使用默认密码，请通过 admin.password 修改")
	}

	if err := r.Run(addr); err != nil {
		return fmt.Errorf("启动服务器失败: %w", err)
	}
	return nil
}

// newSessionStore 按配置选择会话存储
func newSessionStore(cfg *config.Config, redisClient *redis.Client) session.Store {
	ttl := cfg.Session.GetExpireDuration()
	if cfg.Session.Store == config.SessionStoreRedis {
		return session.NewRedisStore(redisClient, cfg.Session.KeyPrefix, ttl)
	}
	return session.NewMemoryStore(ttl)
}

// newSeedLimiter 启用 Redis 时使用分布式锁，多实例部署也只播种一次
func newSeedLimiter(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) limiter.Limiter {
	if redisClient != nil {
		return limiter.NewRedisLimiter(redisClient, 1, cfg.Session.KeyPrefix+"lock:", seedLockTTL, logger)
	}
	return limiter.NewLocalLimiter(1)
}
