package models

import "time"

// User roles
const (
	RoleRecruiter = "recruiter"
	RoleCandidate = "candidate"
)

// UserProfile represents a user document in Firestore.
// Created on first sign-in; the role is chosen at creation and never
// changed afterwards by any operation in this codebase.
// @Description User account and profile information
type UserProfile struct {
	ID          string    `json:"id" firestore:"-" example:"u_8f2k1"`
	Email       string    `json:"email" firestore:"email" example:"user@example.com"`
	DisplayName string    `json:"displayName" firestore:"displayName" example:"John Doe"`
	Role        string    `json:"role" firestore:"role" example:"candidate"` // "recruiter" or "candidate"
	Password    string    `json:"-" firestore:"password,omitempty"`          // Hashed password, never sent to client
	Provider    string    `json:"provider" firestore:"provider" example:"email"`
	GoogleID    string    `json:"-" firestore:"googleId,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`

	// Recruiter fields
	CompanyName        string `json:"companyName,omitempty" firestore:"companyName,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty" firestore:"companyWebsite,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty" firestore:"companyDescription,omitempty"`
	CompanyLogoUrl     string `json:"companyLogoUrl,omitempty" firestore:"companyLogoUrl,omitempty"`
	CompanyLogoID      string `json:"companyLogoId,omitempty" firestore:"companyLogoId,omitempty"`

	// Candidate fields
	Phone        string           `json:"phone,omitempty" firestore:"phone,omitempty"`
	LinkedinURL  string           `json:"linkedinUrl,omitempty" firestore:"linkedinUrl,omitempty"`
	PortfolioURL string           `json:"portfolioUrl,omitempty" firestore:"portfolioUrl,omitempty"`
	Headline     string           `json:"headline,omitempty" firestore:"headline,omitempty"`
	Summary      string           `json:"summary,omitempty" firestore:"summary,omitempty"`
	Skills       []string         `json:"skills,omitempty" firestore:"skills,omitempty"`
	CVUrl        string           `json:"cvUrl,omitempty" firestore:"cvUrl,omitempty" example:"https://storage.googleapis.com/bucket/cvs/resume_1712.pdf"`
	CVPublicID   string           `json:"cvPublicId,omitempty" firestore:"cvPublicId,omitempty"`
	WorkHistory  []WorkExperience `json:"workHistory,omitempty" firestore:"workHistory,omitempty"`
	Education    []Education      `json:"education,omitempty" firestore:"education,omitempty"`

	// Job-post credits and bookmarks
	FreePostsRemaining      int      `json:"freePostsRemaining" firestore:"freePostsRemaining"`
	PurchasedPostsRemaining int      `json:"purchasedPostsRemaining" firestore:"purchasedPostsRemaining"`
	SavedJobs               []string `json:"savedJobs,omitempty" firestore:"savedJobs,omitempty"`

	// Stripe checkout sessions already credited, so a session can only
	// be fulfilled once.
	FulfilledSessions []string `json:"-" firestore:"fulfilledSessions,omitempty"`
}

// WorkExperience represents one entry of a candidate's work history
type WorkExperience struct {
	Title       string `json:"title" firestore:"title"`
	Company     string `json:"company" firestore:"company"`
	StartDate   string `json:"startDate,omitempty" firestore:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" firestore:"endDate,omitempty"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// Education represents one entry of a candidate's education history
type Education struct {
	Degree      string `json:"degree" firestore:"degree"`
	Field       string `json:"field,omitempty" firestore:"field,omitempty"`
	Institution string `json:"institution" firestore:"institution"`
	Year        int    `json:"year,omitempty" firestore:"year,omitempty"`
}

// PostCredits returns the total number of job posts the recruiter can
// still publish.
func (u *UserProfile) PostCredits() int {
	return u.FreePostsRemaining + u.PurchasedPostsRemaining
}

// HasSavedJob reports whether jobID is in the user's saved set.
func (u *UserProfile) HasSavedJob(jobID string) bool {
	for _, id := range u.SavedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// HasFulfilledSession reports whether a checkout session has already
// been credited to this user.
func (u *UserProfile) HasFulfilledSession(sessionID string) bool {
	for _, id := range u.FulfilledSessions {
		if id == sessionID {
			return true
		}
	}
	return false
}
