package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"workout-go/internal/config"
	"workout-go/internal/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// 全局参数
	configFile string
	envFile    string
)

// rootCmd 默认启动HTTP服务
var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Workout tracker API server",
	Long: `Workout tracker API server.

Without a subcommand the HTTP server is started (same as "server serve").`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "配置文件路径")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "启动前加载的 .env 文件")
}

// loadConfig 加载 .env 和配置文件
func loadConfig() (*config.Config, error) {
	// .env 不存在时忽略，已有的环境变量优先
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("加载 %s 失败: %w", envFile, err)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return cfg, nil
}

// newLogger 按配置初始化日志
func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warnf("未知的日志级别 %q，使用 info", cfg.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openDatabase 打开数据库并迁移表结构
func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := models.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("初始化数据库失败: %w", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}
	return db, nil
}
