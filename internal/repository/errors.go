package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate 唯一约束冲突
var ErrDuplicate = errors.New("duplicate record")

// translateError 把各驱动的唯一约束错误统一成 ErrDuplicate
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
