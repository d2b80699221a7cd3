package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
	"github.com/plateformprojob/backend/workflow"
)

// Workflow is the application-pipeline surface the handler needs.
// Satisfied by *workflow.ApplicationWorkflow.
type Workflow interface {
	Apply(ctx context.Context, jobID, candidateID, filename, mimeType string, content []byte) (*models.Application, error)
	ApplyOneClick(ctx context.Context, jobID, candidateID string) (*models.Application, error)
	UpdateStatus(ctx context.Context, applicationID, newStatus, recruiterID string) (*models.Application, error)
	Withdraw(ctx context.Context, applicationID, candidateID string) (*models.Application, error)
}

// ApplicationLister lists persisted applications. Satisfied by
// *storage.FirestoreClient.
type ApplicationLister interface {
	ListApplicationsByCandidate(ctx context.Context, candidateID string) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error)
}

// ApplicationHandler handles application submission and lifecycle requests
type ApplicationHandler struct {
	workflow Workflow
	lister   ApplicationLister
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(wf Workflow, lister ApplicationLister) *ApplicationHandler {
	return &ApplicationHandler{workflow: wf, lister: lister}
}

// Apply handles a manual application with a fresh CV upload
// @Summary Apply to a job with a CV file
// @Description Submit an application with an uploaded CV (PDF, DOC, DOCX; max 5MB). The CV is scored against the job before the application is recorded.
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Param cv formData file true "CV file"
// @Param jobId formData string true "Job ID"
// @Param candidateId formData string true "Candidate ID"
// @Success 200 {object} models.ApplyResponse "Application submitted"
// @Failure 400 {object} models.ErrorResponse "Invalid file or missing fields"
// @Failure 404 {object} models.ErrorResponse "Job or candidate not found"
// @Failure 409 {object} models.ErrorResponse "Duplicate application"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications/apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID := c.PostForm("jobId")
	candidateID := c.PostForm("candidateId")
	if jobID == "" || candidateID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "jobId and candidateId are required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	file, header, err := c.Request.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "CV file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Failed to read CV file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	app, err := h.workflow.Apply(c.Request.Context(), jobID, candidateID, header.Filename, header.Header.Get("Content-Type"), buf.Bytes())
	if err != nil {
		h.writeWorkflowError(c, "Apply", err)
		return
	}

	c.JSON(http.StatusOK, models.ApplyResponse{
		Application: app,
		Message:     "Application submitted",
	})
}

// ApplyOneClick handles a one-click application reusing the saved CV
// @Summary One-click apply
// @Description Submit an application reusing the CV already stored on the candidate's profile
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body models.OneClickApplyRequest true "One-click apply request"
// @Success 200 {object} models.ApplyResponse "Application submitted"
// @Failure 400 {object} models.ErrorResponse "Missing fields or no CV on profile"
// @Failure 404 {object} models.ErrorResponse "Job or candidate not found"
// @Failure 409 {object} models.ErrorResponse "Duplicate application"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications/apply-one-click [post]
func (h *ApplicationHandler) ApplyOneClick(c *gin.Context) {
	var req models.OneClickApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "jobId and candidateId are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	app, err := h.workflow.ApplyOneClick(c.Request.Context(), req.JobID, req.CandidateID)
	if err != nil {
		h.writeWorkflowError(c, "ApplyOneClick", err)
		return
	}

	c.JSON(http.StatusOK, models.ApplyResponse{
		Application: app,
		Message:     "Application submitted",
	})
}

// UpdateStatus handles a recruiter status change
// @Summary Update application status
// @Description Set the application status (Applied, Under Review, Interviewing, Offer Extended, Rejected). Only the recruiter owning the job may update.
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body models.UpdateStatusRequest true "Status update request"
// @Success 200 {object} models.ApplyResponse "Status updated"
// @Failure 400 {object} models.ErrorResponse "Invalid status"
// @Failure 403 {object} models.ErrorResponse "Caller does not own the job"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/update-status [post]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "applicationId, status and recruiterId are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	app, err := h.workflow.UpdateStatus(c.Request.Context(), req.ApplicationID, req.Status, req.RecruiterID)
	if err != nil {
		h.writeWorkflowError(c, "UpdateStatus", err)
		return
	}

	c.JSON(http.StatusOK, models.ApplyResponse{
		Application: app,
		Message:     "Status updated",
	})
}

// Withdraw handles a candidate withdrawal
// @Summary Withdraw an application
// @Description Mark the application Withdrawn. Only the owning candidate may withdraw; Withdrawn and Rejected applications cannot be withdrawn again.
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdrawal request"
// @Success 200 {object} models.ApplyResponse "Application withdrawn"
// @Failure 403 {object} models.ErrorResponse "Caller does not own the application"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Failure 409 {object} models.ErrorResponse "Application already in a terminal state"
// @Router /applications/withdraw [post]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "applicationId and candidateId are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	app, err := h.workflow.Withdraw(c.Request.Context(), req.ApplicationID, req.CandidateID)
	if err != nil {
		h.writeWorkflowError(c, "Withdraw", err)
		return
	}

	c.JSON(http.StatusOK, models.ApplyResponse{
		Application: app,
		Message:     "Application withdrawn",
	})
}

// List returns applications for a candidate or a job
// @Summary List applications
// @Description List applications by candidateId or by jobId (exactly one is required)
// @Tags Applications
// @Produce json
// @Param candidateId query string false "Candidate ID"
// @Param jobId query string false "Job ID"
// @Success 200 {array} models.Application "Applications"
// @Failure 400 {object} models.ErrorResponse "Missing filter"
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	candidateID := c.Query("candidateId")
	jobID := c.Query("jobId")

	var (
		apps []models.Application
		err  error
	)
	switch {
	case candidateID != "":
		apps, err = h.lister.ListApplicationsByCandidate(c.Request.Context(), candidateID)
	case jobID != "":
		apps, err = h.lister.ListApplicationsByJob(c.Request.Context(), jobID)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "candidateId or jobId query parameter is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err != nil {
		log.Printf("[ApplicationHandler] List error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to list applications",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// writeWorkflowError maps workflow errors onto the HTTP taxonomy:
// validation 400, authorization 403, not-found 404, conflict 409,
// everything else 500 with the upstream message forwarded.
func (h *ApplicationHandler) writeWorkflowError(c *gin.Context, op string, err error) {
	log.Printf("[ApplicationHandler] %s error: %v", op, err)

	code := http.StatusInternalServerError
	var ingestErr *storage.IngestError
	switch {
	case errors.As(err, &ingestErr):
		code = http.StatusBadRequest
	case errors.Is(err, workflow.ErrNoCV), errors.Is(err, workflow.ErrInvalidStatus):
		code = http.StatusBadRequest
	case errors.Is(err, workflow.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, workflow.ErrDuplicateApplication), errors.Is(err, workflow.ErrTerminalStatus):
		code = http.StatusConflict
	}

	c.JSON(code, models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
