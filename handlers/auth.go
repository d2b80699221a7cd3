package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/auth"
	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
)

// UserStore is the document-store surface the auth handler needs.
// Satisfied by *storage.FirestoreClient.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.UserProfile) error
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error
	SaveJob(ctx context.Context, userID, jobID string, saved bool) error
}

// AuthHandler handles authentication and profile requests
type AuthHandler struct {
	store      UserStore
	jwtService *auth.JWTService
	googleAuth *auth.GoogleAuthService
	freePosts  int
}

// NewAuthHandler creates a new auth handler. freePosts is the job-post
// allotment granted to new recruiter accounts.
func NewAuthHandler(store UserStore, jwtService *auth.JWTService, googleAuth *auth.GoogleAuthService, freePosts int) *AuthHandler {
	return &AuthHandler{
		store:      store,
		jwtService: jwtService,
		googleAuth: googleAuth,
		freePosts:  freePosts,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register with email, password and a role (recruiter or candidate). The role is fixed at creation.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process registration",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user := &models.UserProfile{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Password:    hashedPassword,
		Provider:    "email",
	}
	if user.Role == models.RoleRecruiter {
		user.FreePostsRemaining = h.freePosts
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrAlreadyExists) {
			code = http.StatusConflict
		}
		c.JSON(code, models.ErrorResponse{
			Error:   "Registration failed",
			Code:    code,
			Details: err.Error(),
		})
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User registered: %s (%s)", user.Email, user.Role)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Registration successful",
	})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	if user.Provider == "google" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "This account uses Google Sign-In. Please login with Google.",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using a Google SSO ID token. A profile is created on first sign-in with the requested role (candidate by default).
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	googleUser, err := h.googleAuth.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid Google token",
			Code:    http.StatusUnauthorized,
			Details: err.Error(),
		})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), googleUser.Email)
	if err != nil {
		// First sign-in: create the profile with the requested role
		role := req.Role
		if role != models.RoleRecruiter {
			role = models.RoleCandidate
		}

		user = &models.UserProfile{
			Email:       googleUser.Email,
			DisplayName: googleUser.Name,
			Role:        role,
			Provider:    "google",
			GoogleID:    googleUser.Subject,
		}
		if user.Role == models.RoleRecruiter {
			user.FreePostsRemaining = h.freePosts
		}

		if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
			log.Printf("[AuthHandler] Failed to create Google user: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to create account",
				Code:    http.StatusInternalServerError,
				Details: err.Error(),
			})
			return
		}
		log.Printf("[AuthHandler] New Google user created: %s (%s)", user.Email, user.Role)
	} else if user.GoogleID == "" {
		h.store.UpdateUser(c.Request.Context(), user.ID, map[string]interface{}{
			"googleId": googleUser.Subject,
			"provider": "google",
		})
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] Google user logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GetProfile retrieves the current user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: user})
}

// UpdateProfile updates the current user's profile. The role is never
// part of the update surface.
// @Summary Update user profile
// @Description Update the authenticated user's profile fields
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} models.ProfileResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != "" {
		updates["displayName"] = req.DisplayName
	}
	if req.CompanyName != "" {
		updates["companyName"] = req.CompanyName
	}
	if req.CompanyWebsite != "" {
		updates["companyWebsite"] = req.CompanyWebsite
	}
	if req.CompanyDescription != "" {
		updates["companyDescription"] = req.CompanyDescription
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.LinkedinURL != "" {
		updates["linkedinUrl"] = req.LinkedinURL
	}
	if req.PortfolioURL != "" {
		updates["portfolioUrl"] = req.PortfolioURL
	}
	if req.Headline != "" {
		updates["headline"] = req.Headline
	}
	if req.Summary != "" {
		updates["summary"] = req.Summary
	}
	if req.Skills != nil {
		updates["skills"] = req.Skills
	}
	if req.WorkHistory != nil {
		updates["workHistory"] = req.WorkHistory
	}
	if req.Education != nil {
		updates["education"] = req.Education
	}

	if len(updates) > 0 {
		if err := h.store.UpdateUser(c.Request.Context(), claims.UserID, updates); err != nil {
			log.Printf("[AuthHandler] Failed to update profile: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to update profile",
				Code:  http.StatusInternalServerError,
			})
			return
		}
	}

	user, err := h.store.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	log.Printf("[AuthHandler] Profile updated: %s", claims.UserID)
	c.JSON(http.StatusOK, models.ProfileResponse{
		User:    user,
		Message: "Profile updated successfully",
	})
}

// SaveJob toggles a job in the user's saved set
// @Summary Save or unsave a job
// @Description Add or remove a job from the authenticated user's saved jobs
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param saved query bool false "true to save (default), false to remove"
// @Success 200 {object} models.ProfileResponse "Updated profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/saved-jobs/{id} [post]
func (h *AuthHandler) SaveJob(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	saved := c.DefaultQuery("saved", "true") != "false"
	if err := h.store.SaveJob(c.Request.Context(), claims.UserID, c.Param("id"), saved); err != nil {
		log.Printf("[AuthHandler] Failed to update saved jobs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update saved jobs",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: user})
}
