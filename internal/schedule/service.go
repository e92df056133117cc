package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service manages raid schedules
type Service interface {
	CreateSchedule(ctx context.Context, partyID int, startDate time.Time, endDate *time.Time, description string) (*domain.RaidSchedule, error)
	ListByParty(ctx context.Context, partyID int) ([]domain.RaidSchedule, error)
	Deactivate(ctx context.Context, id int) error
}

type service struct {
	repo    repository.Schedule
	parties repository.Party
}

// NewService creates a new schedule service
func NewService(repo repository.Schedule, parties repository.Party) Service {
	return &service{repo: repo, parties: parties}
}

func (s *service) CreateSchedule(ctx context.Context, partyID int, startDate time.Time, endDate *time.Time, description string) (*domain.RaidSchedule, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description", domain.ErrInvalidInput)
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date before start_date", domain.ErrInvalidInput)
	}
	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return nil, err
	}

	sched := &domain.RaidSchedule{
		PartyID:     partyID,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: description,
		Active:      true,
	}
	id, err := s.repo.InsertSchedule(ctx, sched)
	if err != nil {
		return nil, err
	}
	sched.ID = id

	logger.FromContext(ctx).Info("Raid schedule created", "schedule_id", id, "party_id", partyID)
	return sched, nil
}

func (s *service) ListByParty(ctx context.Context, partyID int) ([]domain.RaidSchedule, error) {
	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	return s.repo.GetSchedulesByParty(ctx, partyID)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	if err := s.repo.DeactivateSchedule(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Raid schedule deactivated", "schedule_id", id)
	return nil
}
