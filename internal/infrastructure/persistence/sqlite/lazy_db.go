package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/domain/repository"
	"github.com/bnema/drawerpane/internal/logging"
)

// LazyDB defers opening the database until first access, so sessions that
// never float an item skip the WASM compilation and migration cost.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

// NewLazyDB creates a new lazy database provider.
// The actual connection is not established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it if necessary.
// This method is thread-safe and will only initialize once.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		} else {
			log.Debug().Msg("lazy database initialized successfully")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyPositionStore is a floating position repository that opens the
// database on first use.
type LazyPositionStore struct {
	lazy *LazyDB
	repo repository.FloatingPositionRepository
	mu   sync.Mutex
}

// NewLazyPositionStore wraps lazy as a position store.
func NewLazyPositionStore(lazy *LazyDB) *LazyPositionStore {
	return &LazyPositionStore{lazy: lazy}
}

func (s *LazyPositionStore) repository(ctx context.Context) (repository.FloatingPositionRepository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		return s.repo, nil
	}
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}
	s.repo = NewFloatingPositionRepository(db)
	return s.repo, nil
}

// Get returns the stored position of id, or nil.
func (s *LazyPositionStore) Get(ctx context.Context, id entity.ItemID) (*entity.FloatingPosition, error) {
	repo, err := s.repository(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

// Save stores pos.
func (s *LazyPositionStore) Save(ctx context.Context, pos *entity.FloatingPosition) error {
	repo, err := s.repository(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, pos)
}

// Delete removes the stored position of id.
func (s *LazyPositionStore) Delete(ctx context.Context, id entity.ItemID) error {
	repo, err := s.repository(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// DeleteAll removes every stored position.
func (s *LazyPositionStore) DeleteAll(ctx context.Context) error {
	repo, err := s.repository(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteAll(ctx)
}

// GetAll returns every stored position.
func (s *LazyPositionStore) GetAll(ctx context.Context) ([]*entity.FloatingPosition, error) {
	repo, err := s.repository(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

var _ repository.FloatingPositionRepository = (*LazyPositionStore)(nil)
