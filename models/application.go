package models

import "time"

// Application status constants. Withdrawn and Rejected are terminal:
// once reached, the status never changes again.
const (
	StatusApplied       = "Applied"
	StatusUnderReview   = "Under Review"
	StatusInterviewing  = "Interviewing"
	StatusOfferExtended = "Offer Extended"
	StatusRejected      = "Rejected"
	StatusWithdrawn     = "Withdrawn"
)

// Application represents an application document in Firestore.
// Candidate and job fields are denormalized at creation time so every
// record is self-describing even if the source documents change later.
// @Description Job application with AI evaluation results
type Application struct {
	ID string `json:"id" firestore:"-" example:"a_91kd3"`

	CandidateID    string `json:"candidateId" firestore:"candidateId"`
	CandidateName  string `json:"candidateName" firestore:"candidateName"`
	CandidateEmail string `json:"candidateEmail" firestore:"candidateEmail"`

	JobID       string `json:"jobId" firestore:"jobId"`
	JobTitle    string `json:"jobTitle" firestore:"jobTitle"`
	RecruiterID string `json:"recruiterId" firestore:"recruiterId"`

	CVUrl      string `json:"cvUrl" firestore:"cvUrl"`
	CVPublicID string `json:"cvPublicId" firestore:"cvPublicId"`

	Status    string    `json:"status" firestore:"status" example:"Applied"`
	AppliedAt time.Time `json:"appliedAt" firestore:"appliedAt"`

	// AI evaluation. AIScore is a pointer so "not scored" is persisted
	// as null rather than zero; the other fields default to empty, not
	// omitted.
	AIScore           *int     `json:"aiScore" firestore:"aiScore"`
	AIAnalysisSummary string   `json:"aiAnalysisSummary" firestore:"aiAnalysisSummary"`
	AIStrengths       []string `json:"aiStrengths" firestore:"aiStrengths"`
	AIWeaknesses      []string `json:"aiWeaknesses" firestore:"aiWeaknesses"`
}

// IsValidStatus reports whether s is one of the known application statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusInterviewing,
		StatusOfferExtended, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// IsRecruiterStatus reports whether s is a status a recruiter may set.
// Withdrawn is candidate-only.
func IsRecruiterStatus(s string) bool {
	return IsValidStatus(s) && s != StatusWithdrawn
}

// IsTerminalStatus reports whether s permits no further transitions.
func IsTerminalStatus(s string) bool {
	return s == StatusWithdrawn || s == StatusRejected
}
