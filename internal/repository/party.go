package repository

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Party defines the interface for raid party persistence
type Party interface {
	InsertParty(ctx context.Context, party *domain.RaidParty) (int, error)
	GetPartyByID(ctx context.Context, id int) (*domain.RaidParty, error)
	GetPartyByName(ctx context.Context, name string) (*domain.RaidParty, error)
	GetAllParties(ctx context.Context) ([]domain.RaidParty, error)
	UpdatePartyPolicy(ctx context.Context, id int, policy domain.DistributionPolicy) error
	DeleteParty(ctx context.Context, id int) error

	// GetRoster returns the party's current live membership.
	GetRoster(ctx context.Context, partyID int) ([]domain.Player, error)
}

// Player defines the interface for player persistence
type Player interface {
	InsertPlayer(ctx context.Context, player *domain.Player) (int, error)
	GetPlayerByID(ctx context.Context, id int) (*domain.Player, error)
	GetPlayersByParty(ctx context.Context, partyID int) ([]domain.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}
