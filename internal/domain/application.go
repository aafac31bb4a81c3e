package domain

import "time"

// Well-known application statuses. Status is free-form; these are the values
// the frontend actually sends.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// JobApplication is one candidate's submission against a job. JobID is a
// plain reference with no integrity enforcement; a dangling reference is
// tolerated on read. Extra carries arbitrary applicant-supplied fields.
type JobApplication struct {
	ID             string
	JobID          string
	ApplicantEmail string
	Status         string
	Extra          map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EnrichedApplication is a JobApplication merged at read time with display
// fields from its referenced job. Nil pointers mean the job no longer
// resolves; nothing here is ever persisted.
type EnrichedApplication struct {
	JobApplication
	Title               *string
	Location            *string
	Company             *string
	ApplicationDeadline *string
	CompanyLogo         *string
}
