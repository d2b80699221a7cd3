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
	"github.com/plateformprojob/backend/config"
	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
)

type stubUserStore struct {
	users      map[string]*models.UserProfile
	byEmail    map[string]*models.UserProfile
	created    *models.UserProfile
	savedJobID string
	savedFlag  bool
	updates    map[string]interface{}
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		users:   map[string]*models.UserProfile{},
		byEmail: map[string]*models.UserProfile{},
	}
}

func (s *stubUserStore) CreateUser(ctx context.Context, user *models.UserProfile) error {
	if _, exists := s.byEmail[user.Email]; exists {
		return storage.ErrAlreadyExists
	}
	user.ID = "u-new"
	s.created = user
	s.users[user.ID] = user
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubUserStore) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (s *stubUserStore) GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (s *stubUserStore) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	s.updates = updates
	return nil
}

func (s *stubUserStore) SaveJob(ctx context.Context, userID, jobID string, saved bool) error {
	s.savedJobID = jobID
	s.savedFlag = saved
	return nil
}

func newAuthRouter(store UserStore) (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
	h := NewAuthHandler(store, jwtService, nil, 3)

	router := gin.New()
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)

	protected := router.Group("/api/auth")
	protected.Use(auth.AuthMiddleware(jwtService))
	protected.GET("/profile", h.GetProfile)
	protected.PUT("/profile", h.UpdateProfile)
	protected.POST("/saved-jobs/:id", h.SaveJob)
	return router, jwtService
}

func TestRegisterRecruiterGetsFreePosts(t *testing.T) {
	t.Parallel()

	store := newStubUserStore()
	router, _ := newAuthRouter(store)

	w := postJSON(t, router, "/api/auth/register", models.RegisterRequest{
		Email:       "rec@example.com",
		Password:    "password123",
		DisplayName: "Rec Ruiter",
		Role:        models.RoleRecruiter,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if store.created.FreePostsRemaining != 3 {
		t.Fatalf("expected 3 free posts, got %d", store.created.FreePostsRemaining)
	}
	if store.created.Password == "password123" {
		t.Fatal("expected password hashed before storage")
	}

	var resp models.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token == "" || resp.User == nil {
		t.Fatalf("expected token and user, got %+v", resp)
	}
}

func TestRegisterCandidateGetsNoFreePosts(t *testing.T) {
	t.Parallel()

	store := newStubUserStore()
	router, _ := newAuthRouter(store)

	w := postJSON(t, router, "/api/auth/register", models.RegisterRequest{
		Email:       "cand@example.com",
		Password:    "password123",
		DisplayName: "Jane Doe",
		Role:        models.RoleCandidate,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if store.created.FreePostsRemaining != 0 {
		t.Fatalf("expected no free posts for a candidate, got %d", store.created.FreePostsRemaining)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	router, _ := newAuthRouter(newStubUserStore())

	w := postJSON(t, router, "/api/auth/register", models.RegisterRequest{
		Email:       "x@example.com",
		Password:    "password123",
		DisplayName: "X",
		Role:        "admin",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newStubUserStore()
	store.byEmail["rec@example.com"] = &models.UserProfile{ID: "u-1", Email: "rec@example.com"}
	router, _ := newAuthRouter(store)

	w := postJSON(t, router, "/api/auth/register", models.RegisterRequest{
		Email:       "rec@example.com",
		Password:    "password123",
		DisplayName: "Rec",
		Role:        models.RoleRecruiter,
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := newStubUserStore()
	user := &models.UserProfile{ID: "u-1", Email: "jane@example.com", Password: hash, Provider: "email", Role: models.RoleCandidate}
	store.users[user.ID] = user
	store.byEmail[user.Email] = user
	router, _ := newAuthRouter(store)

	w := postJSON(t, router, "/api/auth/login", models.LoginRequest{Email: "jane@example.com", Password: "password123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(t, router, "/api/auth/login", models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}

	w = postJSON(t, router, "/api/auth/login", models.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", w.Code)
	}
}

func TestLoginGoogleAccountRejected(t *testing.T) {
	t.Parallel()

	store := newStubUserStore()
	user := &models.UserProfile{ID: "u-1", Email: "jane@example.com", Provider: "google"}
	store.users[user.ID] = user
	store.byEmail[user.Email] = user
	router, _ := newAuthRouter(store)

	w := postJSON(t, router, "/api/auth/login", models.LoginRequest{Email: "jane@example.com", Password: "whatever"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a Google-provider account, got %d", w.Code)
	}
}

func TestUpdateProfileNeverChangesRole(t *testing.T) {
	t.Parallel()

	store := newStubUserStore()
	user := &models.UserProfile{ID: "u-1", Email: "jane@example.com", Role: models.RoleCandidate}
	store.users[user.ID] = user
	router, jwtService := newAuthRouter(store)

	token, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	body, _ := json.Marshal(models.UpdateProfileRequest{Headline: "Senior Go Engineer"})
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if _, ok := store.updates["role"]; ok {
		t.Fatal("role must never appear in profile updates")
	}
	if store.updates["headline"] != "Senior Go Engineer" {
		t.Fatalf("expected headline update, got %v", store.updates)
	}
}

func TestSaveJobToggle(t *testing.T) {
	t.Parallel()

	store := newStubUserStore()
	user := &models.UserProfile{ID: "u-1", Email: "jane@example.com", Role: models.RoleCandidate}
	store.users[user.ID] = user
	router, jwtService := newAuthRouter(store)

	token, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/saved-jobs/job-1?saved=false", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if store.savedJobID != "job-1" || store.savedFlag {
		t.Fatalf("expected unsave of job-1, got %q saved=%v", store.savedJobID, store.savedFlag)
	}
}
