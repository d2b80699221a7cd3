package gemini

import (
	"fmt"
	"strings"
)

// ClassifyScoreFailure converts a model-call failure into a degraded
// ScoreResult. Classification is ordered; the first matching tier wins:
//
//  1. unsupported MIME type reported by the model
//  2. safety/content filter block
//  3. raw-file analysis was attempted (data URI, no text)
//  4. no usable content at all
//  5. generic failure carrying the raw error text
func ClassifyScoreFailure(err error, hasText bool, dataURI string) *ScoreResult {
	msg := err.Error()
	mimeType, _, validDataURI := splitDataURI(dataURI)

	switch {
	case strings.Contains(msg, "mimeType") && strings.Contains(msg, "not supported"):
		if mimeType == "" {
			mimeType = "unknown"
		}
		return &ScoreResult{
			Score:      0,
			Summary:    fmt.Sprintf("The CV file format (%s) is not supported by the AI model and could not be analyzed.", mimeType),
			Strengths:  []string{},
			Weaknesses: []string{fmt.Sprintf("CV file format %s is not analyzable.", mimeType)},
		}

	case strings.Contains(msg, "SAFETY") || strings.Contains(msg, "blocked"):
		return &ScoreResult{
			Score:      0,
			Summary:    "AI analysis was blocked: the CV or job content may have triggered safety filters.",
			Strengths:  []string{},
			Weaknesses: []string{"Analysis could not be completed due to content filtering."},
		}

	case !hasText && validDataURI:
		return &ScoreResult{
			Score:      0,
			Summary:    "The model attempted to analyze the raw CV file but the analysis may be incomplete.",
			Strengths:  []string{},
			Weaknesses: []string{"Raw-file analysis did not complete; results may be missing."},
		}

	case !hasText:
		return &ScoreResult{
			Score:      0,
			Summary:    "No usable CV content was provided for analysis.",
			Strengths:  []string{},
			Weaknesses: []string{"No CV text or readable file content was available."},
		}

	default:
		return &ScoreResult{
			Score:      0,
			Summary:    fmt.Sprintf("AI analysis failed: %s", msg),
			Strengths:  []string{},
			Weaknesses: []string{"Analysis could not be completed."},
		}
	}
}
