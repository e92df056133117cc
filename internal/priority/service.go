package priority

import (
	"context"
	"fmt"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service manages the explicit (player, item, party) priority table
type Service interface {
	CreateEntry(ctx context.Context, playerID, itemID, partyID, order int) (*domain.PriorityEntry, error)
	ListByParty(ctx context.Context, partyID int) ([]domain.PriorityEntry, error)
	DeleteEntry(ctx context.Context, id int) error
}

type service struct {
	repo    repository.Priority
	players repository.Player
	items   repository.Item
	parties repository.Party
}

// NewService creates a new priority service
func NewService(repo repository.Priority, players repository.Player, items repository.Item, parties repository.Party) Service {
	return &service{
		repo:    repo,
		players: players,
		items:   items,
		parties: parties,
	}
}

func (s *service) CreateEntry(ctx context.Context, playerID, itemID, partyID, order int) (*domain.PriorityEntry, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: priority_order must be >= 1", domain.ErrInvalidInput)
	}

	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.PartyID != partyID {
		return nil, fmt.Errorf("%w: player %d, party %d", domain.ErrPlayerNotOnRoster, playerID, partyID)
	}

	entry := &domain.PriorityEntry{
		PlayerID: playerID,
		ItemID:   itemID,
		PartyID:  partyID,
		Order:    order,
	}
	id, err := s.repo.InsertPriority(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	logger.FromContext(ctx).Info("Priority entry created",
		"priority_id", id,
		"player_id", playerID,
		"item_id", itemID,
		"party_id", partyID,
		"order", order,
	)
	return entry, nil
}

func (s *service) ListByParty(ctx context.Context, partyID int) ([]domain.PriorityEntry, error) {
	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	return s.repo.GetPrioritiesByParty(ctx, partyID)
}

func (s *service) DeleteEntry(ctx context.Context, id int) error {
	if err := s.repo.DeletePriority(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Priority entry deleted", "priority_id", id)
	return nil
}
