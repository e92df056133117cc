package party

import (
	"context"
	"fmt"
	"strings"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service defines raid party and roster management
type Service interface {
	CreateParty(ctx context.Context, name string, policy domain.DistributionPolicy) (*domain.RaidParty, error)
	GetParty(ctx context.Context, id int) (*domain.RaidParty, error)
	ListParties(ctx context.Context) ([]domain.RaidParty, error)
	SetPolicy(ctx context.Context, id int, policy domain.DistributionPolicy) error
	DeleteParty(ctx context.Context, id int) error

	AddPlayer(ctx context.Context, partyID int, userID string, jobID int, nickname string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID int) (*domain.Player, error)
	GetRoster(ctx context.Context, partyID int) ([]domain.Player, error)
	RemovePlayer(ctx context.Context, playerID int) error
}

type service struct {
	parties repository.Party
	players repository.Player
	users   repository.User
	jobs    repository.Job
}

// NewService creates a new party service
func NewService(parties repository.Party, players repository.Player, users repository.User, jobs repository.Job) Service {
	return &service{
		parties: parties,
		players: players,
		users:   users,
		jobs:    jobs,
	}
}

func (s *service) CreateParty(ctx context.Context, name string, policy domain.DistributionPolicy) (*domain.RaidParty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: party name", domain.ErrInvalidInput)
	}
	if policy == "" {
		policy = domain.PolicyPriority
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrPolicyUnknown, policy)
	}

	party := &domain.RaidParty{Name: name, Policy: policy}
	id, err := s.parties.InsertParty(ctx, party)
	if err != nil {
		return nil, err
	}
	party.ID = id

	logger.FromContext(ctx).Info("Raid party created", "party_id", id, "name", name, "policy", policy)
	return party, nil
}

func (s *service) GetParty(ctx context.Context, id int) (*domain.RaidParty, error) {
	return s.parties.GetPartyByID(ctx, id)
}

func (s *service) ListParties(ctx context.Context) ([]domain.RaidParty, error) {
	return s.parties.GetAllParties(ctx)
}

func (s *service) SetPolicy(ctx context.Context, id int, policy domain.DistributionPolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrPolicyUnknown, policy)
	}
	if err := s.parties.UpdatePartyPolicy(ctx, id, policy); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Party policy updated", "party_id", id, "policy", policy)
	return nil
}

func (s *service) DeleteParty(ctx context.Context, id int) error {
	if err := s.parties.DeleteParty(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Raid party deleted", "party_id", id)
	return nil
}

func (s *service) AddPlayer(ctx context.Context, partyID int, userID string, jobID int, nickname string) (*domain.Player, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, fmt.Errorf("%w: nickname", domain.ErrInvalidInput)
	}

	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.jobs.GetJobByID(ctx, jobID); err != nil {
		return nil, err
	}

	player := &domain.Player{
		UserID:   userID,
		JobID:    jobID,
		PartyID:  partyID,
		Nickname: nickname,
	}
	id, err := s.players.InsertPlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = id

	logger.FromContext(ctx).Info("Player joined party",
		"player_id", id,
		"party_id", partyID,
		"nickname", nickname,
	)
	return player, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	return s.players.GetPlayerByID(ctx, playerID)
}

func (s *service) GetRoster(ctx context.Context, partyID int) ([]domain.Player, error) {
	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	return s.parties.GetRoster(ctx, partyID)
}

// RemovePlayer drops a player from their party roster. Ledger records the
// player earned stay behind; rotation closure is evaluated against whoever
// remains.
func (s *service) RemovePlayer(ctx context.Context, playerID int) error {
	if err := s.players.DeletePlayer(ctx, playerID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Player removed from party", "player_id", playerID)
	return nil
}
