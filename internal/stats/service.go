package stats

import (
	"context"
	"time"

	"github.com/haneul-dev/raidledger/internal/distribution"
	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service exposes distribution statistics computed from the ledger
type Service interface {
	TotalsByParty(ctx context.Context) ([]domain.PartyDistributionCount, error)
	TotalsByPlayer(ctx context.Context, partyID *int) ([]domain.PlayerDistributionCount, error)
	TotalsBySlot(ctx context.Context) ([]domain.SlotDistributionCount, error)

	// WeeklyTotalsByPlayer counts records inside the current weekly window,
	// using the same Tuesday 08:00 UTC boundary as the decision engine.
	WeeklyTotalsByPlayer(ctx context.Context, partyID *int, now time.Time) ([]domain.WeeklyDistributionCount, error)
}

type service struct {
	repo repository.Stats
}

// NewService creates a new statistics service
func NewService(repo repository.Stats) Service {
	return &service{repo: repo}
}

func (s *service) TotalsByParty(ctx context.Context) ([]domain.PartyDistributionCount, error) {
	return s.repo.CountByParty(ctx)
}

func (s *service) TotalsByPlayer(ctx context.Context, partyID *int) ([]domain.PlayerDistributionCount, error) {
	return s.repo.CountByPlayer(ctx, partyID)
}

func (s *service) TotalsBySlot(ctx context.Context) ([]domain.SlotDistributionCount, error) {
	return s.repo.CountBySlot(ctx)
}

func (s *service) WeeklyTotalsByPlayer(ctx context.Context, partyID *int, now time.Time) ([]domain.WeeklyDistributionCount, error) {
	return s.repo.CountByPlayerSince(ctx, partyID, distribution.WeekStart(now))
}
