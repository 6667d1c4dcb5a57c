// Package limiter 按键限制并发数的槽位限制器。
// 最大并发为 1 时即为按键互斥锁。
package limiter

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLimitReached 槽位已满
var ErrLimitReached = errors.New("concurrency limit reached")

// Limiter 并发限制器
type Limiter interface {
	// Acquire 尝试获取槽位，槽位已满时立即返回 ErrLimitReached
	Acquire(ctx context.Context, key string) error
	// Release 释放槽位
	Release(ctx context.Context, key string)
}

// AcquireWait 轮询获取槽位，直到成功或 ctx 结束
func AcquireWait(ctx context.Context, l Limiter, key string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := l.Acquire(ctx, key)
		if err == nil || !errors.Is(err, ErrLimitReached) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// LocalLimiter 进程内限制器
type LocalLimiter struct {
	mu            sync.Mutex
	maxConcurrent int
	counts        map[string]int
}

// NewLocalLimiter 创建进程内限制器
func NewLocalLimiter(maxConcurrent int) *LocalLimiter {
	return &LocalLimiter{
		maxConcurrent: maxConcurrent,
		counts:        make(map[string]int),
	}
}

// Acquire 获取槽位
func (l *LocalLimiter) Acquire(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts[key] >= l.maxConcurrent {
		return ErrLimitReached
	}
	l.counts[key]++
	return nil
}

// Release 释放槽位
func (l *LocalLimiter) Release(ctx context.Context, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts[key] <= 1 {
		delete(l.counts, key)
		return
	}
	l.counts[key]--
}
