// Package grouplock serialises work on overlapping sets of ids within one process.
package grouplock

import (
	"context"
	"slices"
	"sync"

	"media_core/internal/domain"
)

// GroupLock holds a lock per id.
type GroupLock struct {
	mu   sync.Mutex
	held map[domain.ID]chan struct{}
}

func New() *GroupLock {
	return &GroupLock{held: map[domain.ID]chan struct{}{}}
}

// Lock acquires every id in ascending order, so two callers never wait on
// each other in a cycle. On cancellation nothing stays held.
func (l *GroupLock) Lock(ctx context.Context, ids []domain.ID) error {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for i, id := range sorted {
		if err := l.lockOne(ctx, id); err != nil {
			l.Unlock(sorted[:i])
			return err
		}
	}
	return nil
}

func (l *GroupLock) lockOne(ctx context.Context, id domain.ID) error {
	for {
		l.mu.Lock()
		wait, busy := l.held[id]
		if !busy {
			l.held[id] = make(chan struct{})
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *GroupLock) Unlock(ids []domain.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range slices.Compact(slices.Sorted(slices.Values(ids))) {
		if ch, ok := l.held[id]; ok {
			close(ch)
			delete(l.held, id)
		}
	}
}
