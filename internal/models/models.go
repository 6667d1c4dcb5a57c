package models

import (
	"fmt"
	"strings"

	"workout-go/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 根据配置打开数据库
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("未知的数据库驱动: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // 使用静默模式
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// sqliteDSN 打开外键约束，级联删除依赖它
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// AutoMigrate 自动迁移数据库表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Workout{},
		&Exercise{},
		&ExerciseLog{},
	)
}
