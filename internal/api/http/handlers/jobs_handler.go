package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-service/internal/api/dto"
	"github.com/spec-kit/jobboard-service/internal/service"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

// JobsHandler manages job posting endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List handles GET /jobs. An email query parameter narrows the listing to
// jobs owned by that HR identity.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	var hrEmail *string
	if email := c.Query("email"); email != "" {
		hrEmail = &email
	}

	jobs, err := h.service.ListJobs(c.UserContext(), hrEmail)
	if err != nil {
		return err
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(items)
}

// Get handles GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, found, err := h.service.GetJob(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("job", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Create handles POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.HREmail == "" || req.Title == "" {
		return apperrors.NewValidationError("hr_email and title required", nil)
	}

	input := service.JobCreateInput{
		HREmail:             req.HREmail,
		Title:               req.Title,
		Location:            req.Location,
		Company:             req.Company,
		CompanyLogo:         req.CompanyLogo,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	job, err := h.service.CreateJob(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.InsertResult{Acknowledged: true, InsertedID: job.ID})
}
