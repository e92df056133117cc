package repository

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	InsertUser(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
}
