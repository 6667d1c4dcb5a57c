// Package testutil 测试辅助工具
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"workout-go/internal/config"
	"workout-go/internal/models"

	"gorm.io/gorm"
)

// NewDB 为每个测试创建独立的内存 SQLite 数据库并完成迁移
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := models.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取连接池失败: %v", err)
	}
	// 共享缓存的内存库在多连接下会出现表锁
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}
