package dto

import (
	"time"

	"github.com/spec-kit/jobboard-service/internal/domain"
)

// TokenRequest carries the identity claims presented at login.
type TokenRequest struct {
	Email string `json:"email"`
}

// CreateJobRequest payload.
type CreateJobRequest struct {
	HREmail             string `json:"hr_email"`
	Title               string `json:"title"`
	Location            string `json:"location"`
	Company             string `json:"company"`
	CompanyLogo         string `json:"company_logo"`
	ApplicationDeadline string `json:"applicationDeadline"`
}

// JobResponse mirrors the document shape the frontend consumes; the
// identifier is exposed as _id and the counter stays absent until the first
// application arrives.
type JobResponse struct {
	ID                  string    `json:"_id"`
	HREmail             string    `json:"hr_email"`
	Title               string    `json:"title"`
	Location            string    `json:"location"`
	Company             string    `json:"company"`
	CompanyLogo         string    `json:"company_logo"`
	ApplicationDeadline string    `json:"applicationDeadline"`
	ApplicationsCount   int       `json:"applicationsCount,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// InsertResult mirrors the store insert acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the store update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// NewJobResponse converts a domain job.
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:                  job.ID,
		HREmail:             job.HREmail,
		Title:               job.Title,
		Location:            job.Location,
		Company:             job.Company,
		CompanyLogo:         job.CompanyLogo,
		ApplicationDeadline: job.ApplicationDeadline,
		ApplicationsCount:   job.ApplicationsCount,
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}
}
