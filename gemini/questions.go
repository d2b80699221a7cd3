package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// InterviewQuestions holds categorized interview questions generated
// from a job and the candidate's scored strengths and weaknesses.
type InterviewQuestions struct {
	Technical   []string `json:"technical"`
	Behavioral  []string `json:"behavioral"`
	Situational []string `json:"situational"`
}

// GenerateInterviewQuestions produces categorized questions for an
// interview with the candidate. On model failure or malformed output
// it returns single-element placeholder lists instead of an error.
func (c *Client) GenerateInterviewQuestions(ctx context.Context, jobTitle, jobDescription string, strengths, weaknesses []string) *InterviewQuestions {
	prompt := buildQuestionsPrompt(jobTitle, jobDescription, strengths, weaknesses)

	text, err := c.generate(ctx, genai.Part(genai.Text(prompt)))
	if err != nil {
		log.Printf("[Gemini] Interview question generation failed: %v", err)
		return questionsPlaceholder(err.Error())
	}

	var questions InterviewQuestions
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		log.Printf("[Gemini] Failed to parse questions response: %s", text)
		return questionsPlaceholder("the model returned output that could not be parsed")
	}

	if len(questions.Technical) == 0 && len(questions.Behavioral) == 0 && len(questions.Situational) == 0 {
		return questionsPlaceholder("the model returned no questions")
	}

	return &questions
}

func buildQuestionsPrompt(jobTitle, jobDescription string, strengths, weaknesses []string) string {
	var sb strings.Builder

	sb.WriteString("You are an experienced interviewer preparing questions for a candidate.\n\nJOB:\n")
	fmt.Fprintf(&sb, "Title: %s\n", jobTitle)
	fmt.Fprintf(&sb, "Description: %s\n", jobDescription)

	if len(strengths) > 0 {
		sb.WriteString("\nCANDIDATE STRENGTHS (from CV analysis):\n")
		for _, s := range strengths {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
	}
	if len(weaknesses) > 0 {
		sb.WriteString("\nCANDIDATE WEAKNESSES (from CV analysis):\n")
		for _, w := range weaknesses {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}

	sb.WriteString(`
Return a JSON object with exactly these fields:
{
  "technical": ["3 to 5 technical questions probing the skills the job requires"],
  "behavioral": ["2 to 3 behavioral questions"],
  "situational": ["2 to 3 situational questions; each must address one of the listed weaknesses constructively, giving the candidate room to show growth, never accusatorially"]
}

Return ONLY the JSON object, no markdown formatting, no explanation.`)

	return sb.String()
}

func questionsPlaceholder(reason string) *InterviewQuestions {
	msg := fmt.Sprintf("Question generation failed: %s. Please retry.", reason)
	return &InterviewQuestions{
		Technical:   []string{msg},
		Behavioral:  []string{msg},
		Situational: []string{msg},
	}
}
