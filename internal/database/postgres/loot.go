package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type lootRepository struct {
	db *pgxpool.Pool
}

// NewLootRepository creates a new PostgreSQL loot ledger repository
func NewLootRepository(db *pgxpool.Pool) repository.Loot {
	return &lootRepository{db: db}
}

// InsertLootRecord appends to the ledger under an advisory lock scoped to
// (party, item, week window). The weekly cap is rechecked inside the locked
// transaction so two concurrent resolve+commit sequences cannot both land.
func (r *lootRepository) InsertLootRecord(ctx context.Context, record *domain.LootRecord, weekStart time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	key := distributionLockKey(record.PartyID, record.ItemID, weekStart)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, key); err != nil {
		return fmt.Errorf("failed to take distribution lock: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM loot_records
		WHERE player_id = $1 AND distributed_at >= $2
	`, record.PlayerID, weekStart).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to recheck weekly cap: %w", err)
	}
	if count > 0 {
		return domain.ErrWeeklyCapExceeded
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO loot_records (loot_record_id, player_id, item_id, party_id, distributed_at, policy)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, record.ID, record.PlayerID, record.ItemID, record.PartyID, record.DistributedAt, record.Policy)
	if err != nil {
		return fmt.Errorf("failed to insert loot record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit loot record: %w", err)
	}
	return nil
}

func (r *lootRepository) GetLootRecords(ctx context.Context, filter domain.LootFilter) ([]domain.LootRecord, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT loot_record_id, player_id, item_id, party_id, distributed_at, policy
		FROM loot_records
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, " AND player_id = $%d", argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.ItemID != nil {
		fmt.Fprintf(&queryBuilder, " AND item_id = $%d", argNum)
		args = append(args, *filter.ItemID)
		argNum++
	}

	if filter.PartyID != nil {
		fmt.Fprintf(&queryBuilder, " AND party_id = $%d", argNum)
		args = append(args, *filter.PartyID)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND distributed_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY distributed_at, loot_record_id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get loot records: %w", err)
	}
	defer rows.Close()

	records := []domain.LootRecord{}
	for rows.Next() {
		var rec domain.LootRecord
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.ItemID, &rec.PartyID, &rec.DistributedAt, &rec.Policy); err != nil {
			return nil, fmt.Errorf("failed to scan loot record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *lootRepository) CountRecordsSince(ctx context.Context, playerID int, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM loot_records
		WHERE player_id = $1 AND distributed_at >= $2
	`, playerID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count loot records: %w", err)
	}
	return count, nil
}
