package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/domain/repository"
	"github.com/bnema/drawerpane/internal/logging"
)

const (
	getPositionQuery = `SELECT item_id, x, y, updated_at FROM floating_positions WHERE item_id = ?`

	upsertPositionQuery = `INSERT INTO floating_positions (item_id, x, y, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(item_id) DO UPDATE SET x = excluded.x, y = excluded.y, updated_at = excluded.updated_at`

	deletePositionQuery     = `DELETE FROM floating_positions WHERE item_id = ?`
	deleteAllPositionsQuery = `DELETE FROM floating_positions`
	listPositionsQuery      = `SELECT item_id, x, y, updated_at FROM floating_positions ORDER BY item_id`
)

type floatingPositionRepo struct {
	db *sql.DB
}

// NewFloatingPositionRepository creates a new SQLite-backed floating position repository.
func NewFloatingPositionRepository(db *sql.DB) repository.FloatingPositionRepository {
	return &floatingPositionRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosition(row rowScanner) (*entity.FloatingPosition, error) {
	var (
		id        string
		pos       entity.FloatingPosition
		updatedAt time.Time
	)
	if err := row.Scan(&id, &pos.X, &pos.Y, &updatedAt); err != nil {
		return nil, err
	}
	pos.ItemID = entity.ItemID(id)
	pos.UpdatedAt = updatedAt
	return &pos, nil
}

func (r *floatingPositionRepo) Get(ctx context.Context, id entity.ItemID) (*entity.FloatingPosition, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("item_id", string(id)).Msg("getting floating position")

	pos, err := scanPosition(r.db.QueryRowContext(ctx, getPositionQuery, string(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get floating position %s: %w", id, err)
	}
	return pos, nil
}

func (r *floatingPositionRepo) Save(ctx context.Context, pos *entity.FloatingPosition) error {
	if pos == nil {
		return fmt.Errorf("%w: nil floating position", entity.ErrIllegalArgument)
	}
	log := logging.FromContext(ctx)
	log.Debug().
		Str("item_id", string(pos.ItemID)).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msg("saving floating position")

	updatedAt := pos.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if _, err := r.db.ExecContext(ctx, upsertPositionQuery, string(pos.ItemID), pos.X, pos.Y, updatedAt.UTC()); err != nil {
		return fmt.Errorf("save floating position %s: %w", pos.ItemID, err)
	}
	return nil
}

func (r *floatingPositionRepo) Delete(ctx context.Context, id entity.ItemID) error {
	_, err := r.db.ExecContext(ctx, deletePositionQuery, string(id))
	return err
}

func (r *floatingPositionRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, deleteAllPositionsQuery)
	return err
}

func (r *floatingPositionRepo) GetAll(ctx context.Context) ([]*entity.FloatingPosition, error) {
	rows, err := r.db.QueryContext(ctx, listPositionsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []*entity.FloatingPosition
	for rows.Next() {
		pos, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}
