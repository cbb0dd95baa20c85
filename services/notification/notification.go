package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"salonbook/models"

	"github.com/go-redis/redis/v8"
)

// slotKey is the single Redis key holding the current banner.
const slotKey = "notification:current"

// Presenter owns the transient status banner. There is exactly one slot: a new
// Publish replaces the current notification and restarts its lifetime.
type Presenter interface {
	Publish(ctx context.Context, kind, message string) error
	Current(ctx context.Context) (*models.Notification, error)
}

// RedisPresenter stores the banner under one key with a TTL, so replacement
// and auto-hide both fall out of SET-with-expiry.
type RedisPresenter struct {
	Client *redis.Client
	TTL    time.Duration
}

func (p *RedisPresenter) Publish(ctx context.Context, kind, message string) error {
	data, err := json.Marshal(models.Notification{Kind: kind, Message: message})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := p.Client.Set(ctx, slotKey, data, p.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (p *RedisPresenter) Current(ctx context.Context) (*models.Notification, error) {
	data, err := p.Client.Get(ctx, slotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notification: %w", err)
	}
	var n models.Notification
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		return nil, fmt.Errorf("failed to decode notification: %w", err)
	}
	return &n, nil
}

// MemoryPresenter keeps the slot in process memory with the same replace and
// expiry semantics. Used in tests and single-node setups without Redis.
type MemoryPresenter struct {
	TTL time.Duration

	mu       sync.Mutex
	current  *models.Notification
	deadline time.Time
}

func (p *MemoryPresenter) Publish(ctx context.Context, kind, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = &models.Notification{Kind: kind, Message: message}
	p.deadline = time.Now().Add(p.TTL)
	return nil
}

func (p *MemoryPresenter) Current(ctx context.Context) (*models.Notification, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil || time.Now().After(p.deadline) {
		p.current = nil
		return nil, nil
	}
	n := *p.current
	return &n, nil
}
