package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jobboard-service/internal/domain"
)

// ApplicationRepository encapsulates job application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.JobApplication) error
	ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.JobApplication) error {
	const query = `
        INSERT INTO job_applications (job_id, applicant_email, status, extra)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	status := application.Status
	if status == "" {
		status = domain.ApplicationStatusPending
	}
	extra := application.Extra
	if extra == nil {
		extra = map[string]any{}
	}

	if err := r.pool.QueryRow(ctx, query,
		application.JobID,
		application.ApplicantEmail,
		status,
		extra,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt); err != nil {
		return err
	}
	application.Status = status
	return nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error) {
	const query = `
        SELECT id, job_id, applicant_email, status, extra, created_at, updated_at
        FROM job_applications WHERE applicant_email=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.JobApplication, error) {
	const query = `
        SELECT id, job_id, applicant_email, status, extra, created_at, updated_at
        FROM job_applications WHERE job_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// UpdateStatus overwrites the status column and nothing else. Returns the
// number of matched rows so the handler can report a store-style result.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	const query = `
        UPDATE job_applications SET status=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanApplications(rows pgx.Rows) ([]domain.JobApplication, error) {
	var result []domain.JobApplication
	for rows.Next() {
		var application domain.JobApplication
		if err := rows.Scan(
			&application.ID,
			&application.JobID,
			&application.ApplicantEmail,
			&application.Status,
			&application.Extra,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, application)
	}
	return result, rows.Err()
}
