package domain

import "time"

// Job is a posting owned by the HR identity that created it.
type Job struct {
	ID                  string
	HREmail             string
	Title               string
	Location            string
	Company             string
	CompanyLogo         string
	ApplicationDeadline string
	ApplicationsCount   int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
