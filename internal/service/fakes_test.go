package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/jobboard-service/internal/domain"
	"github.com/spec-kit/jobboard-service/internal/repository"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job.ID = uuid.NewString()
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	stored := *job
	f.jobs[job.ID] = &stored
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) List(_ context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Job
	for _, job := range f.jobs {
		if filter.HREmail != nil && job.HREmail != *filter.HREmail {
			continue
		}
		result = append(result, *job)
	}
	return result, nil
}

func (f *fakeJobRepo) IncrementApplicationsCount(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return pgx.ErrNoRows
	}
	job.ApplicationsCount++
	job.UpdatedAt = time.Now()
	return nil
}

func (f *fakeJobRepo) setTitle(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.Title = title
	}
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*domain.JobApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*domain.JobApplication)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *domain.JobApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	application.ID = uuid.NewString()
	if application.Status == "" {
		application.Status = domain.ApplicationStatusPending
	}
	if application.Extra == nil {
		application.Extra = map[string]any{}
	}
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	stored := *application
	f.applications[application.ID] = &stored
	return nil
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, email string) ([]domain.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.JobApplication
	for _, application := range f.applications {
		if application.ApplicantEmail == email {
			result = append(result, *application)
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID string) ([]domain.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.JobApplication
	for _, application := range f.applications {
		if application.JobID == jobID {
			result = append(result, *application)
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return 0, nil
	}
	application.Status = status
	application.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeApplicationRepo) get(id string) *domain.JobApplication {
	f.mu.Lock()
	defer f.mu.Unlock()
	if application, ok := f.applications[id]; ok {
		copied := *application
		return &copied
	}
	return nil
}
