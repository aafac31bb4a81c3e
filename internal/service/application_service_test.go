package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jobboard-service/internal/auth"
	"github.com/spec-kit/jobboard-service/internal/config"
	"github.com/spec-kit/jobboard-service/internal/domain"
	"github.com/spec-kit/jobboard-service/internal/events"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

type applicationFixture struct {
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	jobService   *JobService
	service      *ApplicationService
}

func newApplicationFixture(t *testing.T, authCfg config.AuthConfig) *applicationFixture {
	t.Helper()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo()
	dispatcher := events.NewInMemoryDispatcher()
	return &applicationFixture{
		jobs:         jobs,
		applications: applications,
		jobService:   NewJobService(jobs, dispatcher),
		service: NewApplicationService(ApplicationDependencies{
			ApplicationRepo: applications,
			JobRepo:         jobs,
			Policy:          auth.NewPolicy(authCfg),
			Dispatcher:      dispatcher,
		}),
	}
}

func principalFor(email string) *auth.Principal {
	return &auth.Principal{Identity: domain.Identity{Email: email}}
}

func TestCreateApplication_IncrementsJobCounter(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	application, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          jobID,
		ApplicantEmail: "candidate@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, application.ID)
	assert.Equal(t, domain.ApplicationStatusPending, application.Status)

	job, found, err := fx.jobService.GetJob(context.Background(), jobID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, job.ApplicationsCount)
}

func TestCreateApplication_ConcurrentSubmissionsKeepEveryIncrement(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	const submissions = 25
	var wg sync.WaitGroup
	errs := make(chan error, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Create(context.Background(), ApplicationCreateInput{
				JobID:          jobID,
				ApplicantEmail: "candidate@example.com",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	job, found, err := fx.jobService.GetJob(context.Background(), jobID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, submissions, job.ApplicationsCount)
}

func TestCreateApplication_UnknownJobRejected(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})

	_, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          "8f14e45f-ceea-467f-a0f9-b1a163c7a0f0",
		ApplicantEmail: "candidate@example.com",
	})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)

	// the rejected submission must not leave a dangling insert behind
	applications, listErr := fx.applications.ListByApplicant(context.Background(), "candidate@example.com")
	require.NoError(t, listErr)
	assert.Empty(t, applications)
}

func TestCreateApplication_MalformedJobIDRejected(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})

	_, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          "not-a-job-id",
		ApplicantEmail: "candidate@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestListForApplicant_EnrichmentReflectsCurrentJob(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	_, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          jobID,
		ApplicantEmail: "candidate@example.com",
		Extra:          map[string]any{"linkedin": "https://linkedin.com/in/candidate"},
	})
	require.NoError(t, err)

	principal := principalFor("candidate@example.com")
	enriched, err := fx.service.ListForApplicant(context.Background(), principal, "candidate@example.com")
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.NotNil(t, enriched[0].Title)
	assert.Equal(t, "Backend Engineer", *enriched[0].Title)
	require.NotNil(t, enriched[0].Company)
	assert.Equal(t, "Acme", *enriched[0].Company)
	assert.Equal(t, "https://linkedin.com/in/candidate", enriched[0].Extra["linkedin"])

	// denormalization is computed per read: a retitled job shows up immediately
	fx.jobs.setTitle(jobID, "Staff Backend Engineer")
	enriched, err = fx.service.ListForApplicant(context.Background(), principal, "candidate@example.com")
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.NotNil(t, enriched[0].Title)
	assert.Equal(t, "Staff Backend Engineer", *enriched[0].Title)
}

func TestListForApplicant_DanglingJobLeavesFieldsAbsent(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	_, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          jobID,
		ApplicantEmail: "candidate@example.com",
	})
	require.NoError(t, err)

	// simulate the job disappearing underneath the application
	fx.jobs.mu.Lock()
	delete(fx.jobs.jobs, jobID)
	fx.jobs.mu.Unlock()

	enriched, err := fx.service.ListForApplicant(context.Background(), principalFor("candidate@example.com"), "candidate@example.com")
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].Title)
	assert.Nil(t, enriched[0].Company)
	assert.Equal(t, jobID, enriched[0].JobID)
}

func TestListForApplicant_EmailMismatchForbidden(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})

	_, err := fx.service.ListForApplicant(context.Background(), principalFor("someone-else@example.com"), "candidate@example.com")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestListForApplicant_AnonymousUnauthorized(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})

	_, err := fx.service.ListForApplicant(context.Background(), nil, "candidate@example.com")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestListForJob_OpenByDefault(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	_, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          jobID,
		ApplicantEmail: "candidate@example.com",
	})
	require.NoError(t, err)

	applications, err := fx.service.ListForJob(context.Background(), nil, jobID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)
}

func TestListForJob_ConfigurableTokenRequirement(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{RequireTokenJobApplicants: true})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	_, err := fx.service.ListForJob(context.Background(), nil, jobID)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)

	_, err = fx.service.ListForJob(context.Background(), principalFor("hr-a@example.com"), jobID)
	require.NoError(t, err)
}

func TestUpdateStatus_TouchesOnlyStatus(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})
	jobID := seedJob(t, fx.jobService, "hr-a@example.com", "Backend Engineer")

	application, err := fx.service.Create(context.Background(), ApplicationCreateInput{
		JobID:          jobID,
		ApplicantEmail: "candidate@example.com",
		Extra:          map[string]any{"resume": "https://example.com/cv.pdf"},
	})
	require.NoError(t, err)
	before := fx.applications.get(application.ID)

	matched, err := fx.service.UpdateStatus(context.Background(), nil, application.ID, domain.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	after := fx.applications.get(application.ID)
	assert.Equal(t, domain.ApplicationStatusAccepted, after.Status)
	assert.Equal(t, before.JobID, after.JobID)
	assert.Equal(t, before.ApplicantEmail, after.ApplicantEmail)
	assert.Equal(t, before.Extra, after.Extra)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateStatus_UnknownApplicationNotFound(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})

	_, err := fx.service.UpdateStatus(context.Background(), nil, "missing-id", domain.ApplicationStatusRejected)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUpdateStatus_BlankStatusRejected(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{})

	_, err := fx.service.UpdateStatus(context.Background(), nil, "some-id", "   ")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUpdateStatus_ConfigurableTokenRequirement(t *testing.T) {
	fx := newApplicationFixture(t, config.AuthConfig{RequireTokenStatusUpdate: true})

	_, err := fx.service.UpdateStatus(context.Background(), nil, "some-id", domain.ApplicationStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}
