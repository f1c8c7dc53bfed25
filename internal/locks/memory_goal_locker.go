package locks

import (
	"context"
	"sync"
	"time"
)

type keyedSlot struct {
	sem  chan struct{}
	refs int
}

// MemoryGoalLocker is a keyed mutex for a single process.
type MemoryGoalLocker struct {
	mu    sync.Mutex
	slots map[string]*keyedSlot
	wait  time.Duration
}

func NewMemoryGoalLocker(wait time.Duration) *MemoryGoalLocker {
	return &MemoryGoalLocker{
		slots: make(map[string]*keyedSlot),
		wait:  wait,
	}
}

func (m *MemoryGoalLocker) Lock(ctx context.Context, goalID string) (func(), error) {
	slot := m.acquireSlot(goalID)

	var timeout <-chan time.Time
	if m.wait > 0 {
		timer := time.NewTimer(m.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case slot.sem <- struct{}{}:
	case <-ctx.Done():
		m.releaseSlot(goalID)
		return nil, ctx.Err()
	case <-timeout:
		m.releaseSlot(goalID)
		return nil, ErrGoalLocked
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.sem
			m.releaseSlot(goalID)
		})
	}, nil
}

func (m *MemoryGoalLocker) acquireSlot(goalID string) *keyedSlot {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[goalID]
	if !ok {
		slot = &keyedSlot{sem: make(chan struct{}, 1)}
		m.slots[goalID] = slot
	}
	slot.refs++
	return slot
}

func (m *MemoryGoalLocker) releaseSlot(goalID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[goalID]
	if !ok {
		return
	}
	slot.refs--
	if slot.refs == 0 {
		delete(m.slots, goalID)
	}
}
