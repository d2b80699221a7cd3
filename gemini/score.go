package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// ScoreInput carries the job facts and CV content for scoring. CVText,
// when present, takes strict priority: the binary payload is not sent
// at all.
type ScoreInput struct {
	JobTitle        string `json:"jobTitle"`
	JobDescription  string `json:"jobDescription"`
	Technologies    string `json:"technologies"`
	ExperienceLevel string `json:"experienceLevel"`

	// CVText is the extracted plain text of the CV, preferred over the
	// binary payload.
	CVText string `json:"cvTextContent,omitempty"`
	// CVDataURI is a base64 data URI of the original file, used only
	// when no text was extracted upstream.
	CVDataURI string `json:"cvDataUri,omitempty"`
}

// ScoreResult is the fixed structured output of CV scoring
type ScoreResult struct {
	Score      int      `json:"score"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// ScoreCV evaluates how well the CV fits the job. It never returns an
// error: any model failure or malformed output is absorbed into a
// degraded-but-valid result so application flows can always proceed.
func (c *Client) ScoreCV(ctx context.Context, input ScoreInput) *ScoreResult {
	prompt := BuildScorePrompt(input)

	parts := []genai.Part{genai.Text(prompt)}
	if !hasUsableText(input) && input.CVDataURI != "" {
		if blob, ok := blobFromDataURI(input.CVDataURI); ok {
			parts = []genai.Part{blob, genai.Text(prompt)}
		}
	}

	text, err := c.generate(ctx, parts...)
	if err != nil {
		log.Printf("[Gemini] CV scoring failed: %v", err)
		return ClassifyScoreFailure(err, hasUsableText(input), input.CVDataURI)
	}

	return scoreResultFromText(text)
}

// BuildScorePrompt renders the scoring prompt. When CV text is present
// the prompt carries the text and no reference to the binary payload;
// sending both would waste tokens and the model prefers text anyway.
func BuildScorePrompt(input ScoreInput) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert technical recruiter. Evaluate how well the candidate's CV fits the job below.

JOB:
`)
	fmt.Fprintf(&sb, "Title: %s\n", input.JobTitle)
	fmt.Fprintf(&sb, "Experience level: %s\n", input.ExperienceLevel)
	fmt.Fprintf(&sb, "Technologies: %s\n", input.Technologies)
	fmt.Fprintf(&sb, "Description: %s\n", input.JobDescription)

	if hasUsableText(input) {
		sb.WriteString("\nCV TEXT:\n")
		sb.WriteString(input.CVText)
		sb.WriteString("\n")
	} else {
		sb.WriteString("\nThe candidate's CV is attached as a document. Analyze the attached file.\n")
	}

	sb.WriteString(`
Return a JSON object with exactly these fields:
{
  "score": 0-100 integer indicating CV-to-job relevance,
  "summary": "2-3 sentence assessment of the fit",
  "strengths": ["3 to 5 strengths, referencing concrete skills or experience"],
  "weaknesses": ["2 to 3 weaknesses or gaps relative to the job"]
}

Return ONLY the JSON object, no markdown formatting, no explanation.`)

	return sb.String()
}

// scoreResultFromText parses the model output. Malformed output is
// treated like a generic failure: score 0, empty strengths, one
// weakness noting the invalid output. Never returns an error.
func scoreResultFromText(text string) *ScoreResult {
	var result ScoreResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("[Gemini] Failed to parse score response: %s", text)
		return &ScoreResult{
			Score:      0,
			Summary:    "AI analysis failed: the model returned output that could not be parsed.",
			Strengths:  []string{},
			Weaknesses: []string{"The analysis output was invalid and could not be used."},
		}
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Weaknesses == nil {
		result.Weaknesses = []string{}
	}

	return &result
}

func hasUsableText(input ScoreInput) bool {
	return strings.TrimSpace(input.CVText) != ""
}

// blobFromDataURI decodes a base64 data URI into a Gemini blob
func blobFromDataURI(dataURI string) (genai.Blob, bool) {
	mimeType, payload, ok := splitDataURI(dataURI)
	if !ok {
		return genai.Blob{}, false
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return genai.Blob{}, false
	}

	return genai.Blob{MIMEType: mimeType, Data: data}, true
}

// splitDataURI parses "data:<mime>;base64,<payload>"
func splitDataURI(dataURI string) (mimeType, payload string, ok bool) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", "", false
	}

	rest := strings.TrimPrefix(dataURI, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", "", false
	}

	mimeType = rest[:idx]
	payload = rest[idx+len(";base64,"):]
	if mimeType == "" || payload == "" {
		return "", "", false
	}
	return mimeType, payload, true
}
