package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBehind_Load(t *testing.T) {
	backend := newFakeBackend[string, int]()
	backend.loadAllFunc = func(context.Context) (map[string]int, error) {
		return map[string]int{"one": 1, "two": 2}, nil
	}
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 1, backend.loadCount())

	v, ok := c.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Get("three")
	assert.False(t, ok)
}

func TestWriteBehind_LoadError(t *testing.T) {
	boom := errors.New("database connection failed")
	backend := newFakeBackend[string, int]()
	backend.loadAllFunc = func(context.Context) (map[string]int, error) { return nil, boom }
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	assert.ErrorIs(t, c.Load(context.Background()), boom)
}

func TestWriteBehind_SetIsVisibleBeforePersist(t *testing.T) {
	release := make(chan struct{})
	backend := newFakeBackend[string, int]()
	backend.persistFunc = func(context.Context, string, int) error {
		<-release
		return nil
	}
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	c.Set("k", 42)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	close(release)
	c.Flush()
	assert.Equal(t, []string{"k"}, backend.persistedKeys())
}

func TestWriteBehind_Delete(t *testing.T) {
	backend := newFakeBackend[string, int]()
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	c.Set("k", 1)
	c.Delete("k")
	c.Flush()

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, []string{"k"}, backend.deletedKeys())
}

func TestWriteBehind_SlowOlderWriteDoesNotOverwriteNewer(t *testing.T) {
	backend := newFakeBackend[string, string]()
	var calls int32
	backend.persistFunc = func(context.Context, string, string) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			time.Sleep(50 * time.Millisecond)
		}
		return nil
	}
	c := NewWriteBehind[string, string](backend, zerolog.Nop())

	c.Set("k", "old")
	c.Set("k", "new")
	c.Flush()

	mem, _ := c.Get("k")
	assert.Equal(t, "new", mem)
	stored, ok := backend.value("k")
	require.True(t, ok)
	assert.Equal(t, "new", stored)
}

func TestWriteBehind_DeleteAfterSetWins(t *testing.T) {
	backend := newFakeBackend[string, int]()
	var calls int32
	backend.persistFunc = func(context.Context, string, int) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			time.Sleep(50 * time.Millisecond)
		}
		return nil
	}
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	c.Set("k", 1)
	c.Delete("k")
	c.Flush()

	_, ok := backend.value("k")
	assert.False(t, ok)
}

func TestWriteBehind_List(t *testing.T) {
	c := NewWriteBehind[string, int](newFakeBackend[string, int](), zerolog.Nop())
	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()

	assert.ElementsMatch(t, []int{1, 2}, c.List())
}

func TestWriteBehind_FlushWaitsForSlowWrites(t *testing.T) {
	backend := newFakeBackend[string, int]()
	backend.persistFunc = func(context.Context, string, int) error {
		time.Sleep(20 * time.Millisecond)
		return nil
	}
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	for i := range 5 {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Flush()

	assert.Len(t, backend.persistedKeys(), 5)
}

func TestWriteBehind_PersistErrorKeepsMemoryValue(t *testing.T) {
	backend := newFakeBackend[string, int]()
	backend.persistFunc = func(context.Context, string, int) error { return errors.New("disk full") }
	c := NewWriteBehind[string, int](backend, zerolog.Nop())

	c.Set("k", 7)
	c.Flush()

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestWriteBehind_ConcurrentAccess(t *testing.T) {
	c := NewWriteBehind[int, int](newFakeBackend[int, int](), zerolog.Nop())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set(i, i*i)
			_, _ = c.Get(i)
		}()
	}
	wg.Wait()
	c.Flush()

	assert.Len(t, c.List(), 20)
}
