package repository

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
}
