package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 会话Cookie中的JWT声明，ID(jti)即服务端会话ID
type SessionClaims struct {
	jwt.RegisteredClaims
}

// JWTManager JWT管理器
type JWTManager struct {
	secretKey  []byte
	algorithm  jwt.SigningMethod
	expireTime time.Duration
}

// NewJWTManager 创建JWT管理器
func NewJWTManager(secretKey string, algorithm string, expireTime time.Duration) *JWTManager {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &JWTManager{
		secretKey:  []byte(secretKey),
		algorithm:  method,
		expireTime: expireTime,
	}
}

// ExpireTime 获取Token有效期
func (j *JWTManager) ExpireTime() time.Duration {
	return j.expireTime
}

// GenerateToken 为会话ID生成Token
func (j *JWTManager) GenerateToken(sessionID string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expireTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(j.algorithm, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken 验证Token并返回会话ID
func (j *JWTManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != j.algorithm {
			return nil, errors.New("无效的签名算法")
		}
		return j.secretKey, nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.ID != "" {
		return claims.ID, nil
	}

	return "", errors.New("无效的Token")
}
