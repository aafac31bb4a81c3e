package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/jobboard-service/internal/auth"
	"github.com/spec-kit/jobboard-service/internal/domain"
	"github.com/spec-kit/jobboard-service/internal/events"
	"github.com/spec-kit/jobboard-service/internal/repository"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

// ApplicationService coordinates job application workflows, including the
// read-time enrichment of applications with job display fields.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	policy       *auth.Policy
	dispatcher   events.Dispatcher
}

// ApplicationCreateInput describes application submission payload. Extra
// carries whatever additional fields the applicant sent.
type ApplicationCreateInput struct {
	JobID          string
	ApplicantEmail string
	Status         string
	Extra          map[string]any
}

// ApplicationDependencies bundles requirements for the application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	JobRepo         repository.JobRepository
	Policy          *auth.Policy
	Dispatcher      events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		jobs:         deps.JobRepo,
		policy:       deps.Policy,
		dispatcher:   deps.Dispatcher,
	}
}

// ListForApplicant returns the caller's applications enriched with display
// fields from each referenced job. The merge happens on every read so the
// response always reflects the job's current values. A job that no longer
// resolves leaves the display fields absent instead of failing the request.
func (s *ApplicationService) ListForApplicant(ctx context.Context, principal *auth.Principal, email string) ([]domain.EnrichedApplication, error) {
	if err := s.policy.Authorize(principal, auth.ActionReadOwnApplications, email); err != nil {
		return nil, err
	}

	applications, err := s.applications.ListByApplicant(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	enriched := make([]domain.EnrichedApplication, 0, len(applications))
	for _, application := range applications {
		item := domain.EnrichedApplication{JobApplication: application}
		if job, ok := s.resolveJob(ctx, application.JobID); ok {
			item.Title = &job.Title
			item.Location = &job.Location
			item.Company = &job.Company
			item.ApplicationDeadline = &job.ApplicationDeadline
			item.CompanyLogo = &job.CompanyLogo
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}

// ListForJob returns every application referencing the given job.
func (s *ApplicationService) ListForJob(ctx context.Context, principal *auth.Principal, jobID string) ([]domain.JobApplication, error) {
	if err := s.policy.Authorize(principal, auth.ActionReadJobApplicants, ""); err != nil {
		return nil, err
	}
	applications, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return applications, nil
}

// Create validates that the referenced job exists, inserts the application
// and bumps the job's applications counter. Validating up front keeps a
// rejected submission from leaving a dangling insert behind.
func (s *ApplicationService) Create(ctx context.Context, input ApplicationCreateInput) (*domain.JobApplication, error) {
	if _, err := uuid.Parse(input.JobID); err != nil {
		return nil, apperrors.NewValidationError("job_id is not a valid job identifier", map[string]any{"job_id": input.JobID})
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": input.JobID})
		}
		return nil, apperrors.MapError(err)
	}

	application := &domain.JobApplication{
		JobID:          input.JobID,
		ApplicantEmail: strings.TrimSpace(input.ApplicantEmail),
		Status:         input.Status,
		Extra:          input.Extra,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, apperrors.MapError(err)
	}

	if err := s.jobs.IncrementApplicationsCount(ctx, input.JobID); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventApplicationSubmitted,
		JobID: job.ID,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID:  application.ID,
			ApplicantEmail: application.ApplicantEmail,
			HREmail:        job.HREmail,
		},
	})
	return application, nil
}

// UpdateStatus overwrites the status field of one application and nothing
// else. Returns the number of matched rows.
func (s *ApplicationService) UpdateStatus(ctx context.Context, principal *auth.Principal, id, status string) (int64, error) {
	if err := s.policy.Authorize(principal, auth.ActionUpdateApplicationStatus, ""); err != nil {
		return 0, err
	}
	if strings.TrimSpace(status) == "" {
		return 0, apperrors.NewValidationError("status is required", nil)
	}

	matched, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	if matched == 0 {
		return 0, apperrors.NewNotFound("job application", map[string]any{"id": id})
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventApplicationStatusChanged,
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: id,
			NewStatus:     status,
		},
	})
	return matched, nil
}

// resolveJob looks up the referenced job, treating malformed and unknown
// identifiers alike as unresolved.
func (s *ApplicationService) resolveJob(ctx context.Context, jobID string) (*domain.Job, bool) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, false
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, false
	}
	return job, true
}

func (s *ApplicationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
