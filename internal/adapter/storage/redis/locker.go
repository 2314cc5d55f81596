package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smart-voucher/pkg/apperror"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const lockRetryInterval = 25 * time.Millisecond

// releaseScript deletes a lock only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker implements ports.Locker across processes using Redis SET NX.
// A lock whose holder died expires after ttl.
type Locker struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	wait   time.Duration
}

// NewLocker creates a Redis-backed locker.
func NewLocker(client *goredis.Client, ttl, wait time.Duration) *Locker {
	return &Locker{
		client: client,
		prefix: "lock:",
		ttl:    ttl,
		wait:   wait,
	}
}

// Lock acquires keys in the given order, polling until wait elapses.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	token := uuid.NewString()
	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquire(ctx, l.prefix+key, token); err != nil {
			l.release(acquired, token)
			return nil, apperror.ErrLockTimeout(err)
		}
		acquired = append(acquired, l.prefix+key)
	}

	var once sync.Once
	return func() { once.Do(func() { l.release(acquired, token) }) }, nil
}

func (l *Locker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetArgs(ctx, key, token, goredis.SetArgs{
			Mode: "NX",
			TTL:  l.ttl,
		}).Result()
		switch {
		case err == nil && ok == "OK":
			return nil
		case err != nil && !errors.Is(err, goredis.Nil):
			return fmt.Errorf("redis lock %s: %w", key, err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("redis lock %s: %w", key, ctx.Err())
		}
	}
}

// release runs on a fresh context so cancelled callers still unlock.
func (l *Locker) release(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, key := range keys {
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}
}
