package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type scheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new PostgreSQL raid schedule repository
func NewScheduleRepository(db *pgxpool.Pool) repository.Schedule {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) InsertSchedule(ctx context.Context, schedule *domain.RaidSchedule) (int, error) {
	query := `
		INSERT INTO raid_schedules (party_id, start_date, end_date, description, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING schedule_id
	`

	var id int
	err := r.db.QueryRow(ctx, query,
		schedule.PartyID, schedule.StartDate, schedule.EndDate, schedule.Description, schedule.Active,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return 0, domain.ErrPartyNotFound
		}
		return 0, fmt.Errorf("failed to insert schedule: %w", err)
	}
	return id, nil
}

func (r *scheduleRepository) GetSchedulesByParty(ctx context.Context, partyID int) ([]domain.RaidSchedule, error) {
	query := `
		SELECT schedule_id, party_id, start_date, end_date, description, is_active
		FROM raid_schedules
		WHERE party_id = $1
		ORDER BY start_date DESC, schedule_id DESC
	`

	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer rows.Close()

	schedules := []domain.RaidSchedule{}
	for rows.Next() {
		var s domain.RaidSchedule
		if err := rows.Scan(&s.ID, &s.PartyID, &s.StartDate, &s.EndDate, &s.Description, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) DeactivateSchedule(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `UPDATE raid_schedules SET is_active = FALSE WHERE schedule_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}
