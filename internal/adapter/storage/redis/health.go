package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthKey = "lock:health"

// HealthCheck reports whether Redis can take entity locks. A read-only
// replica answers PING but refuses SET NX, so the check writes a short-lived
// key in the lock keyspace.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Set(ctx, healthKey, "ok", 5*time.Second).Err(); err != nil {
		return fmt.Errorf("lock keyspace not writable: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
