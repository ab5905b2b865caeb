// Package repository defines persistence ports for domain entities.
package repository

import (
	"context"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// FloatingPositionRepository persists the last floating window position of
// drawer items across sessions.
type FloatingPositionRepository interface {
	// Get returns the stored position for an item, or nil if none exists.
	Get(ctx context.Context, id entity.ItemID) (*entity.FloatingPosition, error)

	// Save creates or replaces the position for an item.
	Save(ctx context.Context, pos *entity.FloatingPosition) error

	// Delete removes the stored position for an item.
	Delete(ctx context.Context, id entity.ItemID) error

	// DeleteAll removes every stored position.
	DeleteAll(ctx context.Context) error

	// GetAll returns all stored positions ordered by item ID.
	GetAll(ctx context.Context) ([]*entity.FloatingPosition, error)
}
