package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/cache"
	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

var _ drawer.PositionStore = (*cache.PositionStore)(nil)

// memRepo is an in-memory FloatingPositionRepository.
type memRepo struct {
	mu      sync.Mutex
	stored  map[entity.ItemID]*entity.FloatingPosition
	getAll  int
	failAll error
}

func newMemRepo(positions ...*entity.FloatingPosition) *memRepo {
	r := &memRepo{stored: make(map[entity.ItemID]*entity.FloatingPosition)}
	for _, p := range positions {
		r.stored[p.ItemID] = p
	}
	return r
}

func (r *memRepo) Get(_ context.Context, id entity.ItemID) (*entity.FloatingPosition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stored[id], nil
}

func (r *memRepo) Save(_ context.Context, pos *entity.FloatingPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored[pos.ItemID] = pos
	return nil
}

func (r *memRepo) Delete(_ context.Context, id entity.ItemID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stored, id)
	return nil
}

func (r *memRepo) DeleteAll(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = make(map[entity.ItemID]*entity.FloatingPosition)
	return nil
}

func (r *memRepo) GetAll(context.Context) ([]*entity.FloatingPosition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getAll++
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]*entity.FloatingPosition, 0, len(r.stored))
	for _, p := range r.stored {
		out = append(out, p)
	}
	return out, nil
}

func (r *memRepo) loads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getAll
}

func TestPositionStore_LoadsOnceOnFirstGet(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo(entity.NewFloatingPosition("search", entity.Point{X: 4, Y: 2}))
	store := cache.NewPositionStore(ctx, repo)

	assert.Equal(t, 0, repo.loads())

	pos, err := store.Get(ctx, "search")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, entity.Point{X: 4, Y: 2}, pos.Point())

	missing, err := store.Get(ctx, "outline")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, 1, repo.loads())
}

func TestPositionStore_SavePersistsAfterFlush(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	store := cache.NewPositionStore(ctx, repo)

	require.NoError(t, store.Save(ctx, entity.NewFloatingPosition("log", entity.Point{X: 10, Y: 3})))

	pos, err := store.Get(ctx, "log")
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 10, Y: 3}, pos.Point())

	store.Flush()
	persisted, err := repo.Get(ctx, "log")
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 10.0, persisted.X)
}

func TestPositionStore_SaveBeforeGetIsNotShadowedByLoad(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo(entity.NewFloatingPosition("git", entity.Point{X: 1, Y: 1}))
	store := cache.NewPositionStore(ctx, repo)

	require.NoError(t, store.Save(ctx, entity.NewFloatingPosition("git", entity.Point{X: 9, Y: 9})))

	pos, err := store.Get(ctx, "git")
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 9, Y: 9}, pos.Point())
	store.Flush()
}

func TestPositionStore_LoadErrorIsReturned(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.failAll = errors.New("locked")
	store := cache.NewPositionStore(ctx, repo)

	_, err := store.Get(ctx, "search")
	assert.ErrorIs(t, err, repo.failAll)
}

func TestPositionStore_SaveNilIsRejected(t *testing.T) {
	store := cache.NewPositionStore(context.Background(), newMemRepo())
	assert.ErrorIs(t, store.Save(context.Background(), nil), entity.ErrIllegalArgument)
}
