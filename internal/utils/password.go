package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash 用户不存在时参与比较，使两种登录失败耗时接近
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("workout-dummy-password"), bcrypt.DefaultCost)

// HashPassword 哈希密码
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword 验证密码
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CheckDummyPassword 对固定哈希做一次比较，结果总是失败
func CheckDummyPassword(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// IsPasswordHash 判断字符串是否已经是bcrypt哈希格式(以$2a$或$2b$开头)
func IsPasswordHash(s string) bool {
	return len(s) >= 4 && (s[:4] == "$2a$" || s[:4] == "$2b$")
}
