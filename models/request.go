package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"jobId is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email" example:"user@example.com"`
	Password    string `json:"password" binding:"required,min=6" example:"password123"`
	DisplayName string `json:"displayName" binding:"required" example:"John Doe"`
	Role        string `json:"role" binding:"required,oneof=recruiter candidate" example:"candidate"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Role    string `json:"role,omitempty" example:"candidate"` // Used only on first sign-in
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string       `json:"token"`
	User    *UserProfile `json:"user"`
	Message string       `json:"message,omitempty" example:"Login successful"`
}

// UpdateProfileRequest represents profile update request. Only set
// fields are written; the role is never updatable.
// @Description Profile update request
type UpdateProfileRequest struct {
	DisplayName        string           `json:"displayName,omitempty"`
	CompanyName        string           `json:"companyName,omitempty"`
	CompanyWebsite     string           `json:"companyWebsite,omitempty"`
	CompanyDescription string           `json:"companyDescription,omitempty"`
	Phone              string           `json:"phone,omitempty"`
	LinkedinURL        string           `json:"linkedinUrl,omitempty"`
	PortfolioURL       string           `json:"portfolioUrl,omitempty"`
	Headline           string           `json:"headline,omitempty"`
	Summary            string           `json:"summary,omitempty"`
	Skills             []string         `json:"skills,omitempty"`
	WorkHistory        []WorkExperience `json:"workHistory,omitempty"`
	Education          []Education      `json:"education,omitempty"`
}

// ProfileResponse represents user profile response
// @Description User profile response
type ProfileResponse struct {
	User    *UserProfile `json:"user"`
	Message string       `json:"message,omitempty"`
}

// CreateJobRequest represents a job posting request
// @Description Job posting request
type CreateJobRequest struct {
	Title           string `json:"title" binding:"required" example:"Platform Engineer"`
	Description     string `json:"description" binding:"required"`
	Platform        string `json:"platform" binding:"required" example:"Salesforce"`
	Technologies    string `json:"technologies" binding:"required" example:"Kubernetes,AWS"`
	Modules         string `json:"modules,omitempty"`
	Location        string `json:"location" binding:"required"`
	ContractType    string `json:"contractType" binding:"required" example:"Full-time"`
	ExperienceLevel string `json:"experienceLevel" binding:"required" example:"Senior"`
}

// OneClickApplyRequest represents a one-click application request
// @Description One-click apply request reusing the candidate's saved CV
type OneClickApplyRequest struct {
	JobID       string `json:"jobId" binding:"required" example:"j_3hx92"`
	CandidateID string `json:"candidateId" binding:"required" example:"u_8f2k1"`
}

// UpdateStatusRequest represents a recruiter status update request
// @Description Application status update request
type UpdateStatusRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	Status        string `json:"status" binding:"required" example:"Interviewing"`
	RecruiterID   string `json:"recruiterId" binding:"required"`
}

// WithdrawRequest represents a candidate withdrawal request
// @Description Application withdrawal request
type WithdrawRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	CandidateID   string `json:"candidateId" binding:"required"`
}

// ApplyResponse represents a successful application submission
// @Description Application submission result
type ApplyResponse struct {
	Application *Application `json:"application"`
	Message     string       `json:"message,omitempty" example:"Application submitted"`
}

// UploadResponse represents a media upload response
// @Description File upload result
type UploadResponse struct {
	Success  bool   `json:"success" example:"true"`
	URL      string `json:"url" example:"https://storage.googleapis.com/bucket/cvs/resume_1712.pdf"`
	PublicID string `json:"publicId" example:"cvs/resume_1712.pdf"`
	Message  string `json:"message,omitempty"`
}

// GenerateDescriptionRequest represents a job description generation request
// @Description Structured job facts for description generation
type GenerateDescriptionRequest struct {
	Title            string `json:"title" binding:"required"`
	Platform         string `json:"platform" binding:"required"`
	Technologies     string `json:"technologies" binding:"required"`
	Modules          string `json:"modules,omitempty"`
	ExperienceLevel  string `json:"experienceLevel" binding:"required"`
	Location         string `json:"location" binding:"required"`
	ContractType     string `json:"contractType,omitempty"`
	Responsibilities string `json:"responsibilities" binding:"required"`
	Culture          string `json:"culture,omitempty"`
}

// GenerateDescriptionResponse carries the generated description
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

// InterviewQuestionsRequest represents an interview question generation request
// @Description Interview question generation request
type InterviewQuestionsRequest struct {
	JobTitle       string   `json:"jobTitle" binding:"required"`
	JobDescription string   `json:"jobDescription" binding:"required"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
}

// CheckoutSessionRequest represents a checkout session creation request
// @Description Stripe checkout session creation request
type CheckoutSessionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// CheckoutSessionResponse returns the hosted checkout URL
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// FulfillOrderRequest represents a checkout fulfillment request
// @Description Stripe checkout fulfillment request
type FulfillOrderRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}

// FulfillOrderResponse reports the credited purchase
type FulfillOrderResponse struct {
	Credited                bool `json:"credited"`
	PurchasedPostsRemaining int  `json:"purchasedPostsRemaining"`
}
