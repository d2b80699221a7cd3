package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/auth"
	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
)

// JobStore is the document-store surface the job handler needs.
// Satisfied by *storage.FirestoreClient.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context, recruiterID string, limit int) ([]models.Job, error)
	UpdateJob(ctx context.Context, id string, updates map[string]interface{}) error
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	ConsumePostCredit(ctx context.Context, id string) error
}

// JobHandler handles job posting CRUD
type JobHandler struct {
	store JobStore
}

// NewJobHandler creates a new job handler
func NewJobHandler(store JobStore) *JobHandler {
	return &JobHandler{store: store}
}

// Create posts a new job, consuming one job-post credit
// @Summary Post a job
// @Description Create a job posting. Consumes one free or purchased job-post credit; company fields are denormalized from the recruiter profile.
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateJobRequest true "Job posting request"
// @Success 201 {object} models.Job "Created job"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 402 {object} models.ErrorResponse "No job-post credits remaining"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if !models.IsValidContractType(req.ContractType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "contractType must be one of Full-time, Part-time, Contract",
			Code:  http.StatusBadRequest,
		})
		return
	}
	if !models.IsValidExperienceLevel(req.ExperienceLevel) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "experienceLevel must be one of Entry, Mid, Senior",
			Code:  http.StatusBadRequest,
		})
		return
	}

	recruiter, err := h.store.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Recruiter profile not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	if recruiter.PostCredits() <= 0 {
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse{
			Error: "No job post credits remaining. Purchase a credit to post this job.",
			Code:  http.StatusPaymentRequired,
		})
		return
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Platform:        req.Platform,
		Technologies:    req.Technologies,
		Modules:         req.Modules,
		Location:        req.Location,
		ContractType:    req.ContractType,
		ExperienceLevel: req.ExperienceLevel,
		RecruiterID:     recruiter.ID,
		CompanyName:     recruiter.CompanyName,
		CompanyLogoUrl:  recruiter.CompanyLogoUrl,
		CompanyWebsite:  recruiter.CompanyWebsite,
	}

	if err := h.store.CreateJob(c.Request.Context(), job); err != nil {
		log.Printf("[JobHandler] Failed to create job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to create job",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	// Not transactional with the job write: a failure here leaves the
	// credit unconsumed.
	if err := h.store.ConsumePostCredit(c.Request.Context(), recruiter.ID); err != nil {
		log.Printf("[JobHandler] Failed to consume post credit for %s: %v", recruiter.ID, err)
	}

	log.Printf("[JobHandler] Job %s created by recruiter %s", job.ID, recruiter.ID)
	c.JSON(http.StatusCreated, job)
}

// List returns job postings
// @Summary List jobs
// @Description List job postings, newest first. Optionally filtered to one recruiter.
// @Tags Jobs
// @Produce json
// @Param recruiterId query string false "Recruiter ID"
// @Param limit query int false "Maximum number of jobs"
// @Success 200 {array} models.Job "Jobs"
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	limit := 0
	if v, ok := c.GetQuery("limit"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	jobs, err := h.store.ListJobs(c.Request.Context(), c.Query("recruiterId"), limit)
	if err != nil {
		log.Printf("[JobHandler] Failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to list jobs",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// Get returns a single job posting
// @Summary Get a job
// @Description Get a job posting by ID
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job "Job"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.store.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Job not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load job",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// Update edits a job posting owned by the caller
// @Summary Update a job
// @Description Update a job posting. Only the owning recruiter may update.
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body models.CreateJobRequest true "Updated job fields"
// @Success 200 {object} models.Job "Updated job"
// @Failure 403 {object} models.ErrorResponse "Caller does not own the job"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	job, err := h.store.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Job not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load job",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	if job.RecruiterID != claims.UserID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "You do not own this job",
			Code:  http.StatusForbidden,
		})
		return
	}

	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	updates := map[string]interface{}{
		"title":           req.Title,
		"description":     req.Description,
		"platform":        req.Platform,
		"technologies":    req.Technologies,
		"modules":         req.Modules,
		"location":        req.Location,
		"contractType":    req.ContractType,
		"experienceLevel": req.ExperienceLevel,
	}
	if err := h.store.UpdateJob(c.Request.Context(), job.ID, updates); err != nil {
		log.Printf("[JobHandler] Failed to update job %s: %v", job.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to update job",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	updated, err := h.store.GetJob(c.Request.Context(), job.ID)
	if err != nil {
		c.JSON(http.StatusOK, job)
		return
	}
	c.JSON(http.StatusOK, updated)
}
