package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type gearRepository struct {
	db *pgxpool.Pool
}

// NewGearRepository creates a new PostgreSQL gear set repository
func NewGearRepository(db *pgxpool.Pool) repository.Gear {
	return &gearRepository{db: db}
}

// ReplaceGearSet swaps the player's set of the given type in one transaction.
// The whole set is replaced; there is no partial update path.
func (r *gearRepository) ReplaceGearSet(ctx context.Context, set *domain.GearSet) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var gearSetID int
	err = tx.QueryRow(ctx, `
		INSERT INTO gear_sets (player_id, set_type)
		VALUES ($1, $2)
		ON CONFLICT (player_id, set_type) DO UPDATE SET set_type = EXCLUDED.set_type
		RETURNING gear_set_id
	`, set.PlayerID, set.Type).Scan(&gearSetID)
	if err != nil {
		return fmt.Errorf("failed to upsert gear set: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM gear_set_items WHERE gear_set_id = $1`, gearSetID); err != nil {
		return fmt.Errorf("failed to clear gear set items: %w", err)
	}

	for _, itemID := range set.ItemIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO gear_set_items (gear_set_id, item_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, gearSetID, itemID); err != nil {
			return fmt.Errorf("failed to insert gear set item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit gear set replacement: %w", err)
	}

	set.ID = gearSetID
	return nil
}

func (r *gearRepository) GetGearSet(ctx context.Context, playerID int, setType domain.GearSetType) (*domain.GearSet, error) {
	var set domain.GearSet
	err := r.db.QueryRow(ctx, `
		SELECT gear_set_id, player_id, set_type
		FROM gear_sets
		WHERE player_id = $1 AND set_type = $2
	`, playerID, setType).Scan(&set.ID, &set.PlayerID, &set.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// An undefined set is a normal state, not an error
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gear set: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id FROM gear_set_items WHERE gear_set_id = $1 ORDER BY item_id
	`, set.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get gear set items: %w", err)
	}
	defer rows.Close()

	set.ItemIDs = []int{}
	for rows.Next() {
		var itemID int
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("failed to scan gear set item: %w", err)
		}
		set.ItemIDs = append(set.ItemIDs, itemID)
	}
	return &set, rows.Err()
}
