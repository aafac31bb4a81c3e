package dto

import (
	"encoding/json"

	"github.com/spec-kit/jobboard-service/internal/domain"
)

// CreateApplicationRequest payload. Applicants submit arbitrary fields
// alongside the known ones; everything unrecognized lands in Extra.
type CreateApplicationRequest struct {
	JobID          string         `json:"job_id"`
	ApplicantEmail string         `json:"applicant_email"`
	Status         string         `json:"status"`
	Extra          map[string]any `json:"-"`
}

// UnmarshalJSON splits known fields from applicant-supplied extras.
func (r *CreateApplicationRequest) UnmarshalJSON(data []byte) error {
	type plain CreateApplicationRequest
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	delete(all, "job_id")
	delete(all, "applicant_email")
	delete(all, "status")

	*r = CreateApplicationRequest(known)
	r.Extra = all
	return nil
}

// UpdateApplicationStatusRequest payload.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse mirrors the document shape of an application,
// flattening Extra back to top level. The enrichment fields are populated
// only on the applicant listing and omitted when the referenced job no
// longer resolves.
type ApplicationResponse struct {
	ID             string
	JobID          string
	ApplicantEmail string
	Status         string
	Extra          map[string]any

	Title               *string
	Location            *string
	Company             *string
	ApplicationDeadline *string
	CompanyLogo         *string
}

// MarshalJSON flattens extras into the object; known and enrichment fields
// win over extras with the same name, matching the original merge order.
func (r ApplicationResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+10)
	for key, value := range r.Extra {
		out[key] = value
	}
	out["_id"] = r.ID
	out["job_id"] = r.JobID
	out["applicant_email"] = r.ApplicantEmail
	out["status"] = r.Status

	if r.Title != nil {
		out["title"] = *r.Title
	}
	if r.Location != nil {
		out["location"] = *r.Location
	}
	if r.Company != nil {
		out["company"] = *r.Company
	}
	if r.ApplicationDeadline != nil {
		out["applicationDeadline"] = *r.ApplicationDeadline
	}
	if r.CompanyLogo != nil {
		out["company_logo"] = *r.CompanyLogo
	}
	return json.Marshal(out)
}

// NewApplicationResponse converts a domain application.
func NewApplicationResponse(application *domain.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:             application.ID,
		JobID:          application.JobID,
		ApplicantEmail: application.ApplicantEmail,
		Status:         application.Status,
		Extra:          application.Extra,
	}
}

// NewEnrichedApplicationResponse converts an enriched application.
func NewEnrichedApplicationResponse(enriched *domain.EnrichedApplication) ApplicationResponse {
	response := NewApplicationResponse(&enriched.JobApplication)
	response.Title = enriched.Title
	response.Location = enriched.Location
	response.Company = enriched.Company
	response.ApplicationDeadline = enriched.ApplicationDeadline
	response.CompanyLogo = enriched.CompanyLogo
	return response
}
