package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service defines item catalog management
type Service interface {
	CreateItem(ctx context.Context, name string, slot domain.ItemSlot, source domain.ItemSource) (*domain.Item, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

type service struct {
	repo repository.Item
}

// NewService creates a new item service
func NewService(repo repository.Item) Service {
	return &service{repo: repo}
}

func (s *service) CreateItem(ctx context.Context, name string, slot domain.ItemSlot, source domain.ItemSource) (*domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name", domain.ErrInvalidInput)
	}
	if !slot.IsValid() {
		return nil, fmt.Errorf("%w: slot %q", domain.ErrInvalidInput, slot)
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: source %q", domain.ErrInvalidInput, source)
	}

	item := &domain.Item{Name: name, Slot: slot, Source: source}
	id, err := s.repo.InsertItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	logger.FromContext(ctx).Info("Item created", "item_id", id, "name", name, "slot", slot)
	return item, nil
}

func (s *service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	return s.repo.GetItemByID(ctx, id)
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.GetAllItems(ctx)
}

// DeleteItem removes a catalog entry. Items referenced by loot records are
// immutable and cannot be deleted.
func (s *service) DeleteItem(ctx context.Context, id int) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Item deleted", "item_id", id)
	return nil
}
