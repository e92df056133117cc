package loot

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service exposes reads over the append-only distribution ledger.
// Appends go through the distribution service so the weekly-window
// serialization always applies.
type Service interface {
	ListRecords(ctx context.Context, filter domain.LootFilter) ([]domain.LootRecord, error)
}

type service struct {
	repo repository.Loot
}

// NewService creates a new loot ledger read service
func NewService(repo repository.Loot) Service {
	return &service{repo: repo}
}

func (s *service) ListRecords(ctx context.Context, filter domain.LootFilter) ([]domain.LootRecord, error) {
	return s.repo.GetLootRecords(ctx, filter)
}
