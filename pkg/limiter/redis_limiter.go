package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// 获取槽位：当前值小于最大并发数时加一并设置过期时间，返回新值；否则返回超限值
var acquireScript = redis.NewScript(`local current = redis.call('GET', KEYS[1])
if current == false then
	current = 0
else
	current = tonumber(current)
end

if current >= tonumber(ARGV[1]) then
	return current + 1
end

local newCount = redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
return newCount`)

// 释放槽位：计数减一，小于等于0时删除key，否则刷新过期时间
var releaseScript = redis.NewScript(`local count = redis.call('DECR', KEYS[1])
if tonumber(count) <= 0 then
	redis.call('DEL', KEYS[1])
	return 0
else
	redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
	return count
end`)

// RedisLimiter 基于Redis的并发限制器，多实例共享
// ttl 防止持有者崩溃后槽位永久占用
type RedisLimiter struct {
	client        *redis.Client
	maxConcurrent int
	keyPrefix     string
	ttl           time.Duration
	logger        *logrus.Logger
}

// NewRedisLimiter 创建基于Redis的并发限制器
func NewRedisLimiter(client *redis.Client, maxConcurrent int, keyPrefix string, ttl time.Duration, logger *logrus.Logger) *RedisLimiter {
	return &RedisLimiter{
		client:        client,
		maxConcurrent: maxConcurrent,
		keyPrefix:     keyPrefix,
		ttl:           ttl,
		logger:        logger,
	}
}

// Acquire 获取并发槽位
func (rl *RedisLimiter) Acquire(ctx context.Context, key string) error {
	redisKey := rl.keyPrefix + key

	result, err := acquireScript.Run(ctx, rl.client, []string{redisKey}, rl.maxConcurrent, ttlSeconds(rl.ttl)).Int()
	if err != nil {
		return fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	if result > rl.maxConcurrent {
		rl.logger.WithFields(logrus.Fields{"key": key, "max": rl.maxConcurrent}).Debug("槽位已满")
		return ErrLimitReached
	}
	return nil
}

// Release 释放并发槽位
func (rl *RedisLimiter) Release(ctx context.Context, key string) {
	redisKey := rl.keyPrefix + key

	if err := releaseScript.Run(ctx, rl.client, []string{redisKey}, ttlSeconds(rl.ttl)).Err(); err != nil {
		rl.logger.WithError(err).WithField("key", key).Warn("释放槽位失败")
	}
}

// GetCurrent 获取当前并发数
func (rl *RedisLimiter) GetCurrent(ctx context.Context, key string) (int, error) {
	current, err := rl.client.Get(ctx, rl.keyPrefix+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("获取当前并发数失败: %w", err)
	}
	return current, nil
}

func ttlSeconds(d time.Duration) int {
	s := int(d.Seconds())
	if s < 1 {
		return 1
	}
	return s
}
