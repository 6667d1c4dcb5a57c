package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 WORKOUT_SESSION_SECRET_KEY
const EnvPrefix = "WORKOUT"

// LoadConfig 加载配置文件
// 配置文件不存在时只使用默认值和环境变量
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &cfg, nil
}

// setDefaults 设置默认值
// 所有键都要注册默认值，AutomaticEnv 才能覆盖嵌套字段
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 18080)
	v.SetDefault("server.production_mode", false)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "./database/workout.db")
	v.SetDefault("database.dsn", "")

	v.SetDefault("redis_service.enabled", false)
	v.SetDefault("redis_service.host", "localhost")
	v.SetDefault("redis_service.port", 6379)
	v.SetDefault("redis_service.db", 0)
	v.SetDefault("redis_service.password", "")

	v.SetDefault("session.secret_key", "")
	v.SetDefault("session.algorithm", "HS256")
	v.SetDefault("session.expire_minutes", 7*24*60)
	v.SetDefault("session.cookie_name", "workout_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.key_prefix", "workout:")

	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.name", "Admin User")

	v.SetDefault("cors.origins", []string{})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Content-Type"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validateConfig 验证配置
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务器端口: %d", cfg.Server.Port)
	}

	if cfg.Session.SecretKey == "" {
		return fmt.Errorf("会话密钥不能为空")
	}
	if cfg.Session.ExpireMinutes <= 0 {
		return fmt.Errorf("无效的会话过期时间: %d", cfg.Session.ExpireMinutes)
	}

	if cfg.Admin.Password == "" {
		return fmt.Errorf("管理员密码不能为空")
	}

	switch cfg.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if !cfg.Redis.Enabled {
			return fmt.Errorf("会话存储为 redis 时必须启用 redis_service")
		}
	default:
		return fmt.Errorf("未知的会话存储: %s", cfg.Session.Store)
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return fmt.Errorf("sqlite 数据库路径不能为空")
		}
		// 检查数据库目录是否存在
		dbDir := filepath.Dir(cfg.Database.Path)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
	case DriverPostgres, DriverMySQL:
		if cfg.Database.DSN == "" {
			return fmt.Errorf("%s 数据库 DSN 不能为空", cfg.Database.Driver)
		}
	default:
		return fmt.Errorf("未知的数据库驱动: %s", cfg.Database.Driver)
	}

	switch cfg.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("未知的日志格式: %s", cfg.Log.Format)
	}

	return nil
}
