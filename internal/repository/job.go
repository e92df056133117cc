package repository

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Job defines the interface for the read-only job catalog
type Job interface {
	GetAllJobs(ctx context.Context) ([]domain.Job, error)
	GetJobByID(ctx context.Context, id int) (*domain.Job, error)
}
