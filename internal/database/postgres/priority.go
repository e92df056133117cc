package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type priorityRepository struct {
	db *pgxpool.Pool
}

// NewPriorityRepository creates a new PostgreSQL priority table repository
func NewPriorityRepository(db *pgxpool.Pool) repository.Priority {
	return &priorityRepository{db: db}
}

func (r *priorityRepository) InsertPriority(ctx context.Context, entry *domain.PriorityEntry) (int, error) {
	query := `
		INSERT INTO player_item_priorities (player_id, item_id, party_id, priority_order)
		VALUES ($1, $2, $3, $4)
		RETURNING priority_id
	`

	var id int
	err := r.db.QueryRow(ctx, query, entry.PlayerID, entry.ItemID, entry.PartyID, entry.Order).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return 0, domain.ErrPriorityExists
			case pgForeignKeyViolation:
				return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.ConstraintName)
			}
		}
		return 0, fmt.Errorf("failed to insert priority: %w", err)
	}
	return id, nil
}

// GetPriority returns (nil, nil) when no entry exists; a missing entry is the
// normal lowest-priority state, not an error.
func (r *priorityRepository) GetPriority(ctx context.Context, playerID, itemID, partyID int) (*domain.PriorityEntry, error) {
	query := `
		SELECT priority_id, player_id, item_id, party_id, priority_order
		FROM player_item_priorities
		WHERE player_id = $1 AND item_id = $2 AND party_id = $3
	`

	var entry domain.PriorityEntry
	err := r.db.QueryRow(ctx, query, playerID, itemID, partyID).Scan(
		&entry.ID, &entry.PlayerID, &entry.ItemID, &entry.PartyID, &entry.Order,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get priority: %w", err)
	}
	return &entry, nil
}

func (r *priorityRepository) GetPrioritiesByParty(ctx context.Context, partyID int) ([]domain.PriorityEntry, error) {
	query := `
		SELECT priority_id, player_id, item_id, party_id, priority_order
		FROM player_item_priorities
		WHERE party_id = $1
		ORDER BY item_id, priority_order
	`

	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get priorities: %w", err)
	}
	defer rows.Close()

	entries := []domain.PriorityEntry{}
	for rows.Next() {
		var entry domain.PriorityEntry
		if err := rows.Scan(&entry.ID, &entry.PlayerID, &entry.ItemID, &entry.PartyID, &entry.Order); err != nil {
			return nil, fmt.Errorf("failed to scan priority: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *priorityRepository) DeletePriority(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM player_item_priorities WHERE priority_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete priority: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPriorityNotFound
	}
	return nil
}
