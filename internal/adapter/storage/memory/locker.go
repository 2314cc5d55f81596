package memory

import (
	"context"
	"sync"
	"time"

	"smart-voucher/pkg/apperror"
)

// Locker implements ports.Locker for a single process.
type Locker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
	wait time.Duration
}

// NewLocker creates a Locker that gives up after wait (0 waits for ctx only).
func NewLocker(wait time.Duration) *Locker {
	return &Locker{
		held: make(map[string]chan struct{}),
		wait: wait,
	}
}

// Lock acquires keys in the given order.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquire(ctx, key); err != nil {
			l.release(acquired)
			return nil, apperror.ErrLockTimeout(err)
		}
		acquired = append(acquired, key)
	}

	var once sync.Once
	return func() { once.Do(func() { l.release(acquired) }) }, nil
}

func (l *Locker) acquire(ctx context.Context, key string) error {
	for {
		l.mu.Lock()
		ch, busy := l.held[key]
		if !busy {
			l.held[key] = make(chan struct{})
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Locker) release(keys []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, key := range keys {
		if ch, ok := l.held[key]; ok {
			delete(l.held, key)
			close(ch)
		}
	}
}
