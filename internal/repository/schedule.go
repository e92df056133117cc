package repository

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Schedule defines the interface for raid schedule persistence
type Schedule interface {
	InsertSchedule(ctx context.Context, schedule *domain.RaidSchedule) (int, error)
	GetSchedulesByParty(ctx context.Context, partyID int) ([]domain.RaidSchedule, error)
	DeactivateSchedule(ctx context.Context, id int) error
}
