package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type jobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new PostgreSQL job repository
func NewJobRepository(db *pgxpool.Pool) repository.Job {
	return &jobRepository{db: db}
}

func (r *jobRepository) GetAllJobs(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT job_id, job_name, job_role FROM jobs ORDER BY job_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Name, &job.Role); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) GetJobByID(ctx context.Context, id int) (*domain.Job, error) {
	query := `SELECT job_id, job_name, job_role FROM jobs WHERE job_id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(&job.ID, &job.Name, &job.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}
