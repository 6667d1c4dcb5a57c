package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisStore 基于Redis的会话存储，多实例部署共享会话
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore 创建Redis会话存储
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix + "session:",
		ttl:       ttl,
	}
}

// Create 保存身份并返回新的会话ID
func (s *RedisStore) Create(ctx context.Context, identity Identity) (string, error) {
	id := uuid.NewString()
	identity.CreatedAt = time.Now()

	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("序列化会话失败: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("保存会话失败: %w", err)
	}
	return id, nil
}

// Get 获取会话，过期由Redis TTL处理
func (s *RedisStore) Get(ctx context.Context, id string) (Identity, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Identity{}, ErrNotFound
	}
	if err != nil {
		return Identity{}, fmt.Errorf("读取会话失败: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return Identity{}, fmt.Errorf("解析会话失败: %w", err)
	}
	return identity, nil
}

// Delete 删除会话
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}
