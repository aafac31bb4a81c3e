package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/jobboard-service/internal/domain"
	"github.com/spec-kit/jobboard-service/internal/events"
	"github.com/spec-kit/jobboard-service/internal/repository"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

// JobService coordinates job posting workflows.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	HREmail             string
	Title               string
	Location            string
	Company             string
	CompanyLogo         string
	ApplicationDeadline string
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, dispatcher: dispatcher}
}

// ListJobs returns all jobs, or only those owned by hrEmail when provided.
func (s *JobService) ListJobs(ctx context.Context, hrEmail *string) ([]domain.Job, error) {
	filter := repository.JobFilter{}
	if hrEmail != nil && strings.TrimSpace(*hrEmail) != "" {
		email := strings.TrimSpace(*hrEmail)
		filter.HREmail = &email
	}
	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return jobs, nil
}

// GetJob fetches a single job. Absence is an explicit result, not an error:
// the bool reports whether the job resolved.
func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false, nil
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, apperrors.MapError(err)
	}
	return job, true, nil
}

// CreateJob inserts a new posting owned by the HR identity in the payload.
func (s *JobService) CreateJob(ctx context.Context, input JobCreateInput) (*domain.Job, error) {
	job := &domain.Job{
		HREmail:             strings.TrimSpace(input.HREmail),
		Title:               strings.TrimSpace(input.Title),
		Location:            input.Location,
		Company:             input.Company,
		CompanyLogo:         input.CompanyLogo,
		ApplicationDeadline: input.ApplicationDeadline,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:  events.EventJobCreated,
		JobID: job.ID,
		Payload: events.JobCreatedPayload{
			HREmail: job.HREmail,
			Title:   job.Title,
			Company: job.Company,
		},
	})
	return job, nil
}

func (s *JobService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
