// Package session 服务端会话存储。
//
// 会话ID由服务端生成，Cookie 中只携带签名后的会话ID，
// 身份信息保存在 Store 中，删除即可让会话立即失效。
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("session not found")

// Identity 会话绑定的身份
type Identity struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Store 会话存储
type Store interface {
	// Create 保存身份并返回新的会话ID
	Create(ctx context.Context, identity Identity) (string, error)
	// Get 获取会话，不存在或过期返回 ErrNotFound
	Get(ctx context.Context, id string) (Identity, error)
	// Delete 删除会话，会话不存在不算错误
	Delete(ctx context.Context, id string) error
}
