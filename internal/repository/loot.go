package repository

import (
	"context"
	"time"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Loot defines the interface for the append-only distribution ledger
type Loot interface {
	// InsertLootRecord appends a record inside a transaction that holds an
	// advisory lock on (party, item, week window) so two concurrent
	// resolve+commit sequences cannot both succeed.
	InsertLootRecord(ctx context.Context, record *domain.LootRecord, weekStart time.Time) error

	GetLootRecords(ctx context.Context, filter domain.LootFilter) ([]domain.LootRecord, error)

	// CountRecordsSince counts a player's records on or after the given instant.
	CountRecordsSince(ctx context.Context, playerID int, since time.Time) (int, error)
}

// Priority defines the interface for the explicit priority table
type Priority interface {
	InsertPriority(ctx context.Context, entry *domain.PriorityEntry) (int, error)
	GetPriority(ctx context.Context, playerID, itemID, partyID int) (*domain.PriorityEntry, error)
	GetPrioritiesByParty(ctx context.Context, partyID int) ([]domain.PriorityEntry, error)
	DeletePriority(ctx context.Context, id int) error
}
