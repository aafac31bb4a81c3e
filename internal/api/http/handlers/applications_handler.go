package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-service/internal/api/dto"
	"github.com/spec-kit/jobboard-service/internal/auth"
	"github.com/spec-kit/jobboard-service/internal/service"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

// ApplicationsHandler manages job application endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// ListMine handles GET /job-application. The email query parameter must
// match the authenticated identity; the policy inside the service enforces
// that and the enrichment of each row with job display fields. A missing
// email can never match a token identity and is rejected as forbidden.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	enriched, err := h.service.ListForApplicant(c.UserContext(), principal, c.Query("email"))
	if err != nil {
		return err
	}

	items := make([]dto.ApplicationResponse, 0, len(enriched))
	for i := range enriched {
		items = append(items, dto.NewEnrichedApplicationResponse(&enriched[i]))
	}
	return c.JSON(items)
}

// ListByJob handles GET /job-application/jobs/:job_id.
func (h *ApplicationsHandler) ListByJob(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	applications, err := h.service.ListForJob(c.UserContext(), principal, c.Params("job_id"))
	if err != nil {
		return err
	}

	items := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationResponse(&applications[i]))
	}
	return c.JSON(items)
}

// Create handles POST /job-applications. The referenced job must exist; on
// success the job's applicationsCount is incremented as a side effect.
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.JobID == "" || req.ApplicantEmail == "" {
		return apperrors.NewValidationError("job_id and applicant_email required", nil)
	}

	input := service.ApplicationCreateInput{
		JobID:          req.JobID,
		ApplicantEmail: req.ApplicantEmail,
		Status:         req.Status,
		Extra:          req.Extra,
	}
	application, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.InsertResult{Acknowledged: true, InsertedID: application.ID})
}

// UpdateStatus handles PATCH /job-applications/:id.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	principal, _ := auth.PrincipalFromContext(c)
	matched, err := h.service.UpdateStatus(c.UserContext(), principal, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched})
}
