package repository

import (
	"context"
	"sync"
	"time"
)

const memorySweepInterval = 5 * time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is a process-local CacheRepository used when Redis is not
// configured and in tests. Expired entries are dropped on read and by a
// background sweep; Close stops the sweep.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache() *MemoryCache {
	m := &MemoryCache{
		data:      make(map[string]memoryEntry),
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	go m.sweepLoop(memorySweepInterval)
	return m
}

func (m *MemoryCache) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep removes every expired entry and reports how many went.
func (m *MemoryCache) sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, e := range m.data {
		if e.expired(now) {
			delete(m.data, key)
			removed++
		}
	}
	return removed
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	now := m.now()
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if e.expired(now) {
		m.mu.Lock()
		// a concurrent Set may have refreshed the key
		if cur, ok := m.data[key]; ok && cur.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Set stores value; a zero ttl never expires.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close stops the background sweep. Safe to call more than once.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopSweep) })
	return nil
}
