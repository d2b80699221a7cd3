package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plateformprojob/backend/gemini"
	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
	"github.com/plateformprojob/backend/utils"
)

// Workflow errors. Handlers map these onto HTTP status codes.
var (
	ErrDuplicateApplication = errors.New("an active application for this job already exists")
	ErrForbidden            = errors.New("caller does not own this resource")
	ErrTerminalStatus       = errors.New("application is already in a terminal state")
	ErrNoCV                 = errors.New("candidate profile has no CV")
	ErrInvalidStatus        = errors.New("invalid application status")
)

// Store is the document-store surface the workflow needs. Satisfied by
// *storage.FirestoreClient.
type Store interface {
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	HasActiveApplication(ctx context.Context, candidateID, jobID string) (bool, error)
	CreateApplication(ctx context.Context, app *models.Application) error
	UpdateApplicationStatus(ctx context.Context, id, newStatus string) error
	IncrementApplicationCount(ctx context.Context, jobID string) error
}

// Media is the media-host surface the workflow needs. Satisfied by
// *storage.MediaClient.
type Media interface {
	Download(ctx context.Context, publicURL string) ([]byte, error)
	Owns(publicURL string) bool
}

// Ingestor validates and uploads fresh CV files. Satisfied by
// *storage.Ingestor.
type Ingestor interface {
	Ingest(ctx context.Context, category storage.Category, filename, mimeType string, content []byte) (*storage.IngestResult, error)
}

// Scorer evaluates CV/job fit. Satisfied by *gemini.Client.
type Scorer interface {
	ScoreCV(ctx context.Context, input gemini.ScoreInput) *gemini.ScoreResult
}

// ApplicationWorkflow orchestrates the application pipeline: duplicate
// check, CV resolution, AI scoring, persistence and the advisory
// counter increment.
type ApplicationWorkflow struct {
	store      Store
	media      Media
	ingestor   Ingestor
	scorer     Scorer
	httpClient *http.Client
}

// NewApplicationWorkflow wires the workflow over its dependencies
func NewApplicationWorkflow(store Store, media Media, ingestor Ingestor, scorer Scorer) *ApplicationWorkflow {
	return &ApplicationWorkflow{
		store:      store,
		media:      media,
		ingestor:   ingestor,
		scorer:     scorer,
		httpClient: utils.NewHTTPClient(30 * time.Second),
	}
}

// Apply submits an application with a freshly uploaded CV file. The
// upload is validated and stored before scoring.
func (w *ApplicationWorkflow) Apply(ctx context.Context, jobID, candidateID, filename, mimeType string, content []byte) (*models.Application, error) {
	job, candidate, err := w.fetchJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}

	exists, err := w.store.HasActiveApplication(ctx, candidateID, jobID)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	result, err := w.ingestor.Ingest(ctx, storage.CategoryCV, filename, mimeType, content)
	if err != nil {
		return nil, err
	}

	return w.finishApplication(ctx, job, candidate, result.URL, result.PublicID, content, mimeType)
}

// ApplyOneClick submits an application reusing the CV already stored on
// the candidate's profile.
func (w *ApplicationWorkflow) ApplyOneClick(ctx context.Context, jobID, candidateID string) (*models.Application, error) {
	job, candidate, err := w.fetchJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}

	if candidate.CVUrl == "" {
		return nil, ErrNoCV
	}

	exists, err := w.store.HasActiveApplication(ctx, candidateID, jobID)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	content, mimeType := w.resolveStoredCV(ctx, candidate.CVUrl)

	return w.finishApplication(ctx, job, candidate, candidate.CVUrl, candidate.CVPublicID, content, mimeType)
}

// fetchJobAndCandidate loads both documents concurrently; the two reads
// are independent.
func (w *ApplicationWorkflow) fetchJobAndCandidate(ctx context.Context, jobID, candidateID string) (*models.Job, *models.UserProfile, error) {
	var (
		job       *models.Job
		candidate *models.UserProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		job, err = w.store.GetJob(gctx, jobID)
		return err
	})
	g.Go(func() error {
		var err error
		candidate, err = w.store.GetUser(gctx, candidateID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return job, candidate, nil
}

// resolveStoredCV fetches the bytes behind a previously stored CV URL.
// A failure here does not abort the workflow; scoring degrades instead.
func (w *ApplicationWorkflow) resolveStoredCV(ctx context.Context, cvURL string) ([]byte, string) {
	if w.media.Owns(cvURL) {
		content, err := w.media.Download(ctx, cvURL)
		if err != nil {
			log.Printf("[Workflow] Failed to download stored CV: %v", err)
			return nil, ""
		}
		return content, mimeTypeFromURL(cvURL)
	}

	content, contentType, err := utils.FetchBytes(ctx, w.httpClient, cvURL)
	if err != nil {
		log.Printf("[Workflow] Failed to fetch stored CV: %v", err)
		return nil, ""
	}
	if contentType == "" {
		contentType = mimeTypeFromURL(cvURL)
	}
	return content, contentType
}

// finishApplication runs scoring and persistence. Scoring never aborts
// the workflow: a degraded result is persisted instead. The counter
// increment is not transactional with the application write; a failure
// there leaves the counter behind, which is accepted.
func (w *ApplicationWorkflow) finishApplication(ctx context.Context, job *models.Job, candidate *models.UserProfile, cvURL, cvPublicID string, content []byte, mimeType string) (*models.Application, error) {
	input := gemini.ScoreInput{
		JobTitle:        job.Title,
		JobDescription:  job.Description,
		Technologies:    job.Technologies,
		ExperienceLevel: job.ExperienceLevel,
	}

	if len(content) > 0 {
		text, err := utils.ExtractCVText(content, mimeType)
		if err == nil {
			input.CVText = text
		} else {
			log.Printf("[Workflow] CV text extraction failed, falling back to raw file: %v", err)
			input.CVDataURI = utils.DataURI(content, mimeType)
		}
	}

	result := w.scorer.ScoreCV(ctx, input)

	score := result.Score
	app := &models.Application{
		CandidateID:       candidate.ID,
		CandidateName:     candidate.DisplayName,
		CandidateEmail:    candidate.Email,
		JobID:             job.ID,
		JobTitle:          job.Title,
		RecruiterID:       job.RecruiterID,
		CVUrl:             cvURL,
		CVPublicID:        cvPublicID,
		Status:            models.StatusApplied,
		AppliedAt:         time.Now(),
		AIScore:           &score,
		AIAnalysisSummary: result.Summary,
		AIStrengths:       result.Strengths,
		AIWeaknesses:      result.Weaknesses,
	}
	if app.AIStrengths == nil {
		app.AIStrengths = []string{}
	}
	if app.AIWeaknesses == nil {
		app.AIWeaknesses = []string{}
	}

	if err := w.store.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	if err := w.store.IncrementApplicationCount(ctx, job.ID); err != nil {
		// The application record is authoritative; the counter is advisory.
		log.Printf("[Workflow] Failed to increment application count for job %s: %v", job.ID, err)
	}

	log.Printf("[Workflow] Application %s created: candidate=%s job=%s score=%d", app.ID, candidate.ID, job.ID, result.Score)
	return app, nil
}

// UpdateStatus writes a recruiter-driven status change after verifying
// the caller owns the job behind the application.
func (w *ApplicationWorkflow) UpdateStatus(ctx context.Context, applicationID, newStatus, recruiterID string) (*models.Application, error) {
	if !models.IsRecruiterStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	app, err := w.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.RecruiterID != recruiterID {
		return nil, ErrForbidden
	}

	if err := w.store.UpdateApplicationStatus(ctx, applicationID, newStatus); err != nil {
		return nil, err
	}

	app.Status = newStatus
	log.Printf("[Workflow] Application %s status set to %q by recruiter %s", applicationID, newStatus, recruiterID)
	return app, nil
}

// Withdraw marks the application Withdrawn after verifying the caller
// owns it. Withdrawn and Rejected applications cannot be withdrawn.
func (w *ApplicationWorkflow) Withdraw(ctx context.Context, applicationID, candidateID string) (*models.Application, error) {
	app, err := w.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.CandidateID != candidateID {
		return nil, ErrForbidden
	}

	if models.IsTerminalStatus(app.Status) {
		return nil, fmt.Errorf("%w: %s", ErrTerminalStatus, app.Status)
	}

	if err := w.store.UpdateApplicationStatus(ctx, applicationID, models.StatusWithdrawn); err != nil {
		return nil, err
	}

	app.Status = models.StatusWithdrawn
	log.Printf("[Workflow] Application %s withdrawn by candidate %s", applicationID, candidateID)
	return app, nil
}

func mimeTypeFromURL(url string) string {
	switch strings.ToLower(filepath.Ext(url)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
