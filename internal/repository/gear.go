package repository

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Gear defines the interface for gear set persistence
type Gear interface {
	// ReplaceGearSet swaps the whole set atomically. Gear sets are never patched.
	ReplaceGearSet(ctx context.Context, set *domain.GearSet) error

	// GetGearSet returns (nil, nil) when the player has no set of that type;
	// an undefined set is a normal state, not an error.
	GetGearSet(ctx context.Context, playerID int, setType domain.GearSetType) (*domain.GearSet, error)
}
