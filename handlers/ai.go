package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/gemini"
	"github.com/plateformprojob/backend/models"
)

// AIService is the model-provider surface the handler needs. Satisfied
// by *gemini.Client. Both operations degrade internally and never
// return an error.
type AIService interface {
	GenerateJobDescription(ctx context.Context, facts gemini.JobFacts) string
	GenerateInterviewQuestions(ctx context.Context, jobTitle, jobDescription string, strengths, weaknesses []string) *gemini.InterviewQuestions
}

// AIHandler exposes the generation endpoints used by the posting and
// review flows
type AIHandler struct {
	ai AIService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(ai AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

// GenerateDescription produces job posting prose from structured facts
// @Summary Generate a job description
// @Description Generate marketing-style job posting prose from structured job facts
// @Tags AI
// @Accept json
// @Produce json
// @Param request body models.GenerateDescriptionRequest true "Job facts"
// @Success 200 {object} models.GenerateDescriptionResponse "Generated description (placeholder text on model failure)"
// @Failure 400 {object} models.ErrorResponse "Missing required fields"
// @Router /ai/generate-description [post]
func (h *AIHandler) GenerateDescription(c *gin.Context) {
	var req models.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	description := h.ai.GenerateJobDescription(c.Request.Context(), gemini.JobFacts{
		Title:            req.Title,
		Platform:         req.Platform,
		Technologies:     req.Technologies,
		Modules:          req.Modules,
		ExperienceLevel:  req.ExperienceLevel,
		Location:         req.Location,
		ContractType:     req.ContractType,
		Responsibilities: req.Responsibilities,
		Culture:          req.Culture,
	})

	c.JSON(http.StatusOK, models.GenerateDescriptionResponse{Description: description})
}

// InterviewQuestions produces categorized interview questions
// @Summary Generate interview questions
// @Description Generate technical, behavioral and situational interview questions from a job and the candidate's scored strengths and weaknesses
// @Tags AI
// @Accept json
// @Produce json
// @Param request body models.InterviewQuestionsRequest true "Question generation request"
// @Success 200 {object} gemini.InterviewQuestions "Categorized questions (placeholder lists on model failure)"
// @Failure 400 {object} models.ErrorResponse "Missing required fields"
// @Router /ai/interview-questions [post]
func (h *AIHandler) InterviewQuestions(c *gin.Context) {
	var req models.InterviewQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	questions := h.ai.GenerateInterviewQuestions(c.Request.Context(), req.JobTitle, req.JobDescription, req.Strengths, req.Weaknesses)
	c.JSON(http.StatusOK, questions)
}
