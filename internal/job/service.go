package job

import (
	"context"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// Service exposes the read-only job catalog
type Service interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, id int) (*domain.Job, error)
}

type service struct {
	repo repository.Job
}

// NewService creates a new job service
func NewService(repo repository.Job) Service {
	return &service{repo: repo}
}

func (s *service) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.repo.GetAllJobs(ctx)
}

func (s *service) GetJob(ctx context.Context, id int) (*domain.Job, error) {
	return s.repo.GetJobByID(ctx, id)
}
