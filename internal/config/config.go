package config

import (
	"fmt"
	"time"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis_service"`
	Session  SessionConfig  `mapstructure:"session"`
	Admin    AdminConfig    `mapstructure:"admin"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// 数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DatabaseConfig 数据库配置
// sqlite 使用 Path，postgres/mysql 使用 DSN
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// GetAddress 获取Redis地址
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// 会话存储后端
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// SessionConfig 会话配置
type SessionConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	Algorithm     string `mapstructure:"algorithm"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
	CookieName    string `mapstructure:"cookie_name"`
	Secure        bool   `mapstructure:"secure"`
	Store         string `mapstructure:"store"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

// GetExpireDuration 获取过期时间
func (s *SessionConfig) GetExpireDuration() time.Duration {
	return time.Duration(s.ExpireMinutes) * time.Minute
}

// AdminConfig 管理员配置
type AdminConfig struct {
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// CORSConfig CORS配置
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
