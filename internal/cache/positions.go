package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/domain/repository"
	"github.com/bnema/drawerpane/internal/logging"
)

// PositionStore caches floating positions in memory on top of a
// FloatingPositionRepository. The repository is read once, on first Get;
// saves reach it in the background.
type PositionStore struct {
	cache   *WriteBehind[entity.ItemID, *entity.FloatingPosition]
	once    sync.Once
	loadErr error
	logger  zerolog.Logger
}

// NewPositionStore wraps repo.
func NewPositionStore(ctx context.Context, repo repository.FloatingPositionRepository) *PositionStore {
	log := logging.FromContext(ctx).With().Str("component", "position-cache").Logger()
	return &PositionStore{
		cache:  NewWriteBehind[entity.ItemID, *entity.FloatingPosition](positionBackend{repo: repo}, log),
		logger: log,
	}
}

// Get returns the cached position of id, or nil when none is known.
func (s *PositionStore) Get(ctx context.Context, id entity.ItemID) (*entity.FloatingPosition, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	pos, ok := s.cache.Get(id)
	if !ok {
		return nil, nil
	}
	return pos, nil
}

// Save records pos in memory and persists it asynchronously.
func (s *PositionStore) Save(ctx context.Context, pos *entity.FloatingPosition) error {
	if pos == nil {
		return fmt.Errorf("%w: nil position", entity.ErrIllegalArgument)
	}
	// A save before the first read must not be shadowed by the later bulk load.
	if err := s.load(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("saving position without loaded cache")
	}
	s.cache.Set(pos.ItemID, pos)
	return nil
}

// Flush waits for pending writes to reach the repository.
func (s *PositionStore) Flush() {
	s.cache.Flush()
}

func (s *PositionStore) load(ctx context.Context) error {
	s.once.Do(func() {
		s.loadErr = s.cache.Load(ctx)
		if s.loadErr != nil {
			s.loadErr = fmt.Errorf("load floating positions: %w", s.loadErr)
		}
	})
	return s.loadErr
}

// positionBackend adapts a FloatingPositionRepository to Backend.
type positionBackend struct {
	repo repository.FloatingPositionRepository
}

func (b positionBackend) LoadAll(ctx context.Context) (map[entity.ItemID]*entity.FloatingPosition, error) {
	all, err := b.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[entity.ItemID]*entity.FloatingPosition, len(all))
	for _, pos := range all {
		out[pos.ItemID] = pos
	}
	return out, nil
}

func (b positionBackend) Persist(ctx context.Context, _ entity.ItemID, pos *entity.FloatingPosition) error {
	return b.repo.Save(ctx, pos)
}

func (b positionBackend) Delete(ctx context.Context, id entity.ItemID) error {
	return b.repo.Delete(ctx, id)
}
