package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/auth"
	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
)

type stubJobStore struct {
	jobs     map[string]*models.Job
	user     *models.UserProfile
	userErr  error
	created  *models.Job
	consumed int
	updates  map[string]interface{}
}

func newStubJobStore() *stubJobStore {
	return &stubJobStore{jobs: map[string]*models.Job{}}
}

func (s *stubJobStore) CreateJob(ctx context.Context, job *models.Job) error {
	job.ID = "job-new"
	s.created = job
	s.jobs[job.ID] = job
	return nil
}

func (s *stubJobStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return j, nil
}

func (s *stubJobStore) ListJobs(ctx context.Context, recruiterID string, limit int) ([]models.Job, error) {
	var out []models.Job
	for _, j := range s.jobs {
		if recruiterID == "" || j.RecruiterID == recruiterID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *stubJobStore) UpdateJob(ctx context.Context, id string, updates map[string]interface{}) error {
	s.updates = updates
	return nil
}

func (s *stubJobStore) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.user, s.userErr
}

func (s *stubJobStore) ConsumePostCredit(ctx context.Context, id string) error {
	s.consumed++
	return nil
}

func claimsMiddleware(claims *auth.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.AuthClaimsKey, claims)
		c.Next()
	}
}

func newJobRouter(store JobStore, claims *auth.Claims) *gin.Engine {
	h := NewJobHandler(store)
	router := gin.New()
	router.GET("/api/jobs", h.List)
	router.GET("/api/jobs/:id", h.Get)

	protected := router.Group("/api/jobs")
	if claims != nil {
		protected.Use(claimsMiddleware(claims))
	}
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	return router
}

func validJobRequest() models.CreateJobRequest {
	return models.CreateJobRequest{
		Title:           "Platform Engineer",
		Description:     "Run the platform",
		Platform:        "Salesforce",
		Technologies:    "Apex,LWC",
		Location:        "Paris, France",
		ContractType:    models.ContractFullTime,
		ExperienceLevel: models.ExperienceSenior,
	}
}

func TestCreateJobConsumesCredit(t *testing.T) {
	t.Parallel()

	store := newStubJobStore()
	store.user = &models.UserProfile{
		ID:                 "rec-1",
		Role:               models.RoleRecruiter,
		CompanyName:        "Acme",
		CompanyWebsite:     "https://acme.example",
		FreePostsRemaining: 1,
	}
	router := newJobRouter(store, &auth.Claims{UserID: "rec-1", Role: models.RoleRecruiter})

	w := postJSON(t, router, "/api/jobs", validJobRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if store.consumed != 1 {
		t.Fatalf("expected one credit consumed, got %d", store.consumed)
	}
	if store.created.CompanyName != "Acme" {
		t.Fatalf("expected company fields denormalized, got %+v", store.created)
	}
	if store.created.RecruiterID != "rec-1" {
		t.Fatalf("expected recruiter ID from claims, got %q", store.created.RecruiterID)
	}
}

func TestCreateJobWithoutCredits(t *testing.T) {
	t.Parallel()

	store := newStubJobStore()
	store.user = &models.UserProfile{ID: "rec-1", Role: models.RoleRecruiter}
	router := newJobRouter(store, &auth.Claims{UserID: "rec-1", Role: models.RoleRecruiter})

	w := postJSON(t, router, "/api/jobs", validJobRequest())
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", w.Code)
	}
	if store.created != nil {
		t.Fatal("expected no job created without credits")
	}
	if store.consumed != 0 {
		t.Fatal("expected no credit consumed")
	}
}

func TestCreateJobValidatesEnums(t *testing.T) {
	t.Parallel()

	store := newStubJobStore()
	store.user = &models.UserProfile{ID: "rec-1", FreePostsRemaining: 1}
	router := newJobRouter(store, &auth.Claims{UserID: "rec-1", Role: models.RoleRecruiter})

	req := validJobRequest()
	req.ContractType = "Freelance"
	if w := postJSON(t, router, "/api/jobs", req); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad contract type, got %d", w.Code)
	}

	req = validJobRequest()
	req.ExperienceLevel = "Principal"
	if w := postJSON(t, router, "/api/jobs", req); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad experience level, got %d", w.Code)
	}
}

func TestCreateJobRequiresClaims(t *testing.T) {
	t.Parallel()

	router := newJobRouter(newStubJobStore(), nil)

	w := postJSON(t, router, "/api/jobs", validJobRequest())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", w.Code)
	}
}

func TestGetJobNotFound(t *testing.T) {
	t.Parallel()

	router := newJobRouter(newStubJobStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	t.Parallel()

	store := newStubJobStore()
	store.jobs["job-1"] = &models.Job{ID: "job-1", RecruiterID: "rec-1", Title: "Old"}
	router := newJobRouter(store, &auth.Claims{UserID: "rec-2", Role: models.RoleRecruiter})

	body, _ := json.Marshal(validJobRequest())
	req := httptest.NewRequest(http.MethodPut, "/api/jobs/job-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign recruiter, got %d", w.Code)
	}
	if store.updates != nil {
		t.Fatal("expected no update written")
	}
}

func TestListJobsReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	router := newJobRouter(newStubJobStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}
