package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetDel reads and deletes atomically; it backs the read-once contact
	// handoff between the wizard and the instrument page.
	GetDel(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
