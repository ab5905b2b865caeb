package cache

import (
	"context"
	"sync"
)

// fakeBackend is an in-memory Backend that records every call.
type fakeBackend[K comparable, V any] struct {
	mu sync.Mutex

	loadAllFunc func(ctx context.Context) (map[K]V, error)
	persistFunc func(ctx context.Context, key K, value V) error
	deleteFunc  func(ctx context.Context, key K) error

	loadAllCalls int
	persisted    []K
	deleted      []K
	stored       map[K]V
}

func newFakeBackend[K comparable, V any]() *fakeBackend[K, V] {
	return &fakeBackend[K, V]{
		stored:      make(map[K]V),
		loadAllFunc: func(context.Context) (map[K]V, error) { return map[K]V{}, nil },
		persistFunc: func(context.Context, K, V) error { return nil },
		deleteFunc:  func(context.Context, K) error { return nil },
	}
}

func (f *fakeBackend[K, V]) LoadAll(ctx context.Context) (map[K]V, error) {
	f.mu.Lock()
	f.loadAllCalls++
	f.mu.Unlock()
	return f.loadAllFunc(ctx)
}

func (f *fakeBackend[K, V]) Persist(ctx context.Context, key K, value V) error {
	f.mu.Lock()
	f.persisted = append(f.persisted, key)
	f.mu.Unlock()
	if err := f.persistFunc(ctx, key, value); err != nil {
		return err
	}
	f.mu.Lock()
	f.stored[key] = value
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend[K, V]) Delete(ctx context.Context, key K) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, key)
	f.mu.Unlock()
	if err := f.deleteFunc(ctx, key); err != nil {
		return err
	}
	f.mu.Lock()
	delete(f.stored, key)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend[K, V]) value(key K) (V, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.stored[key]
	return v, ok
}

func (f *fakeBackend[K, V]) persistedKeys() []K {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]K(nil), f.persisted...)
}

func (f *fakeBackend[K, V]) deletedKeys() []K {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]K(nil), f.deleted...)
}

func (f *fakeBackend[K, V]) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadAllCalls
}
