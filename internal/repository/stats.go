package repository

import (
	"context"
	"time"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Stats defines the interface for distribution statistics reads
type Stats interface {
	CountByParty(ctx context.Context) ([]domain.PartyDistributionCount, error)
	CountByPlayer(ctx context.Context, partyID *int) ([]domain.PlayerDistributionCount, error)
	CountBySlot(ctx context.Context) ([]domain.SlotDistributionCount, error)
	CountByPlayerSince(ctx context.Context, partyID *int, since time.Time) ([]domain.WeeklyDistributionCount, error)
}
