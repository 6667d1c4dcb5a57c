package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore 内存会话存储，用于测试和单实例部署
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]Identity
}

// NewMemoryStore 创建内存会话存储
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]Identity),
	}
}

// Create 保存身份并返回新的会话ID
func (s *MemoryStore) Create(ctx context.Context, identity Identity) (string, error) {
	id := uuid.NewString()
	identity.CreatedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = identity
	return id, nil
}

// Get 获取会话，过期的会话在读取时清除
func (s *MemoryStore) Get(ctx context.Context, id string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.sessions[id]
	if !ok {
		return Identity{}, ErrNotFound
	}
	if s.now().Sub(identity.CreatedAt) > s.ttl {
		delete(s.sessions, id)
		return Identity{}, ErrNotFound
	}
	return identity, nil
}

// Delete 删除会话
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
