package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jobboard-service/internal/domain"
)

// JobFilter captures listing parameters.
type JobFilter struct {
	HREmail *string
}

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	IncrementApplicationsCount(ctx context.Context, id string) error
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (hr_email, title, location, company, company_logo, application_deadline)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, applications_count, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		job.HREmail,
		job.Title,
		job.Location,
		job.Company,
		job.CompanyLogo,
		job.ApplicationDeadline,
	).Scan(&job.ID, &job.ApplicationsCount, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	const query = `
        SELECT id, hr_email, title, location, company, company_logo, application_deadline,
               applications_count, created_at, updated_at
        FROM jobs WHERE id=$1`

	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.HREmail,
		&job.Title,
		&job.Location,
		&job.Company,
		&job.CompanyLogo,
		&job.ApplicationDeadline,
		&job.ApplicationsCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	base := `SELECT id, hr_email, title, location, company, company_logo, application_deadline,
                    applications_count, created_at, updated_at
             FROM jobs`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.HREmail != nil {
		args = append(args, *filter.HREmail)
		clauses = append(clauses, fmt.Sprintf("hr_email=$%d", len(args)))
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC", base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

// IncrementApplicationsCount bumps the derived counter atomically in the
// database. Concurrent submissions against the same job cannot lose updates.
func (r *jobRepository) IncrementApplicationsCount(ctx context.Context, id string) error {
	const query = `
        UPDATE jobs SET applications_count = applications_count + 1, updated_at=NOW()
        WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.HREmail,
			&job.Title,
			&job.Location,
			&job.Company,
			&job.CompanyLogo,
			&job.ApplicationDeadline,
			&job.ApplicationsCount,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
