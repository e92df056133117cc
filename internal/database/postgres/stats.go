package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type statsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new PostgreSQL statistics repository
func NewStatsRepository(db *pgxpool.Pool) repository.Stats {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountByParty(ctx context.Context) ([]domain.PartyDistributionCount, error) {
	query := `
		SELECT rp.party_name, COUNT(lr.loot_record_id)
		FROM raid_parties rp
		JOIN loot_records lr ON lr.party_id = rp.party_id
		GROUP BY rp.party_name
		ORDER BY rp.party_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count by party: %w", err)
	}
	defer rows.Close()

	counts := []domain.PartyDistributionCount{}
	for rows.Next() {
		var c domain.PartyDistributionCount
		if err := rows.Scan(&c.PartyName, &c.TotalItems); err != nil {
			return nil, fmt.Errorf("failed to scan party count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *statsRepository) CountByPlayer(ctx context.Context, partyID *int) ([]domain.PlayerDistributionCount, error) {
	query := `
		SELECT p.nickname, COUNT(lr.loot_record_id)
		FROM players p
		JOIN loot_records lr ON lr.player_id = p.player_id
	`
	args := []interface{}{}
	if partyID != nil {
		query += ` WHERE lr.party_id = $1`
		args = append(args, *partyID)
	}
	query += ` GROUP BY p.nickname ORDER BY p.nickname`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count by player: %w", err)
	}
	defer rows.Close()

	counts := []domain.PlayerDistributionCount{}
	for rows.Next() {
		var c domain.PlayerDistributionCount
		if err := rows.Scan(&c.Nickname, &c.TotalItems); err != nil {
			return nil, fmt.Errorf("failed to scan player count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *statsRepository) CountBySlot(ctx context.Context) ([]domain.SlotDistributionCount, error) {
	query := `
		SELECT i.item_slot, i.item_source, COUNT(lr.loot_record_id)
		FROM items i
		JOIN loot_records lr ON lr.item_id = i.item_id
		GROUP BY i.item_slot, i.item_source
		ORDER BY i.item_slot, i.item_source
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count by slot: %w", err)
	}
	defer rows.Close()

	counts := []domain.SlotDistributionCount{}
	for rows.Next() {
		var c domain.SlotDistributionCount
		if err := rows.Scan(&c.Slot, &c.Source, &c.TotalItems); err != nil {
			return nil, fmt.Errorf("failed to scan slot count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *statsRepository) CountByPlayerSince(ctx context.Context, partyID *int, since time.Time) ([]domain.WeeklyDistributionCount, error) {
	query := `
		SELECT p.nickname, COUNT(lr.loot_record_id)
		FROM players p
		JOIN loot_records lr ON lr.player_id = p.player_id
		WHERE lr.distributed_at >= $1
	`
	args := []interface{}{since}
	if partyID != nil {
		query += ` AND lr.party_id = $2`
		args = append(args, *partyID)
	}
	query += ` GROUP BY p.nickname ORDER BY p.nickname`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count by player since: %w", err)
	}
	defer rows.Close()

	counts := []domain.WeeklyDistributionCount{}
	for rows.Next() {
		var c domain.WeeklyDistributionCount
		if err := rows.Scan(&c.Nickname, &c.WeeklyItems); err != nil {
			return nil, fmt.Errorf("failed to scan weekly count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
