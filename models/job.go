package models

import "time"

// Contract type constants
const (
	ContractFullTime = "Full-time"
	ContractPartTime = "Part-time"
	ContractContract = "Contract"
)

// Experience level constants
const (
	ExperienceEntry  = "Entry"
	ExperienceMid    = "Mid"
	ExperienceSenior = "Senior"
)

// Job represents a job posting document in Firestore. Jobs are written
// once by a recruiter and only mutated by application-count increments
// afterwards.
// @Description Job posting
type Job struct {
	ID              string `json:"id" firestore:"-" example:"j_3hx92"`
	Title           string `json:"title" firestore:"title" example:"Platform Engineer"`
	Description     string `json:"description" firestore:"description"`
	Platform        string `json:"platform" firestore:"platform" example:"Salesforce"`
	Technologies    string `json:"technologies" firestore:"technologies" example:"Kubernetes,AWS"` // comma-joined, not a list
	Modules         string `json:"modules,omitempty" firestore:"modules,omitempty"`
	Location        string `json:"location" firestore:"location" example:"Paris, France"`
	ContractType    string `json:"contractType" firestore:"contractType" example:"Full-time"`
	ExperienceLevel string `json:"experienceLevel" firestore:"experienceLevel" example:"Senior"`

	RecruiterID string `json:"recruiterId" firestore:"recruiterId"`

	// Company fields denormalized from the recruiter profile at post time
	CompanyName    string `json:"companyName,omitempty" firestore:"companyName,omitempty"`
	CompanyLogoUrl string `json:"companyLogoUrl,omitempty" firestore:"companyLogoUrl,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty" firestore:"companyWebsite,omitempty"`

	ApplicationCount int       `json:"applicationCount" firestore:"applicationCount"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// IsValidContractType reports whether s is one of the accepted contract types.
func IsValidContractType(s string) bool {
	switch s {
	case ContractFullTime, ContractPartTime, ContractContract:
		return true
	}
	return false
}

// IsValidExperienceLevel reports whether s is one of the accepted levels.
func IsValidExperienceLevel(s string) bool {
	switch s {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}
