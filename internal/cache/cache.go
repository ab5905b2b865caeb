// Package cache holds RAM-first caches persisted asynchronously to a backend.
package cache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Backend is the storage a WriteBehind cache loads from and persists to.
type Backend[K comparable, V any] interface {
	// LoadAll loads every entry from storage.
	LoadAll(ctx context.Context) (map[K]V, error)

	// Persist saves a single entry.
	Persist(ctx context.Context, key K, value V) error

	// Delete removes a single entry.
	Delete(ctx context.Context, key K) error
}

// WriteBehind is a thread-safe cache that serves reads from memory and
// persists writes to its backend in the background.
//
// Reads never hit the backend once Load has run. Writes update memory
// synchronously and return before the backend sees them; Flush waits for
// every pending write. Backend writes run one at a time, and a write that
// reaches the backend after a newer write to the same key is dropped.
type WriteBehind[K comparable, V any] struct {
	entries sync.Map
	backend Backend[K, V]
	pending sync.WaitGroup
	logger  zerolog.Logger

	// mu orders memory updates with their sequence numbers.
	mu  sync.Mutex
	seq uint64

	// persistMu serializes backend writes; written holds the sequence of
	// the last write applied per key.
	persistMu sync.Mutex
	written   map[K]uint64
}

// NewWriteBehind creates a cache over backend. Failed background writes are
// reported to logger.
func NewWriteBehind[K comparable, V any](backend Backend[K, V], logger zerolog.Logger) *WriteBehind[K, V] {
	return &WriteBehind[K, V]{
		backend: backend,
		logger:  logger,
		written: make(map[K]uint64),
	}
}

// Load bulk-loads all entries from the backend into memory.
func (c *WriteBehind[K, V]) Load(ctx context.Context) error {
	data, err := c.backend.LoadAll(ctx)
	if err != nil {
		return err
	}

	for k, v := range data {
		c.entries.Store(k, v)
	}
	return nil
}

// Get returns the cached value for key. It never queries the backend.
func (c *WriteBehind[K, V]) Get(key K) (V, bool) {
	val, ok := c.entries.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return val.(V), true
}

// Set stores value in memory and persists it asynchronously.
func (c *WriteBehind[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.entries.Store(key, value)
	seq := c.next()
	c.mu.Unlock()

	c.writeBehind(key, seq, "async persist failed", func(ctx context.Context) error {
		return c.backend.Persist(ctx, key, value)
	})
}

// Delete removes key from memory and from the backend asynchronously.
func (c *WriteBehind[K, V]) Delete(key K) {
	c.mu.Lock()
	c.entries.Delete(key)
	seq := c.next()
	c.mu.Unlock()

	c.writeBehind(key, seq, "async delete failed", func(ctx context.Context) error {
		return c.backend.Delete(ctx, key)
	})
}

func (c *WriteBehind[K, V]) next() uint64 {
	c.seq++
	return c.seq
}

func (c *WriteBehind[K, V]) writeBehind(key K, seq uint64, failure string, write func(context.Context) error) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		c.persistMu.Lock()
		defer c.persistMu.Unlock()

		if c.written[key] > seq {
			return
		}
		c.written[key] = seq
		if err := write(context.Background()); err != nil {
			c.logger.Warn().Err(err).Interface("key", key).Msg(failure)
		}
	}()
}

// List returns every cached value in no particular order.
func (c *WriteBehind[K, V]) List() []V {
	var values []V
	c.entries.Range(func(_, value any) bool {
		values = append(values, value.(V))
		return true
	})
	return values
}

// Flush blocks until every pending background write has completed.
func (c *WriteBehind[K, V]) Flush() {
	c.pending.Wait()
}
