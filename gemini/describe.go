package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// JobFacts is the structured input for job description generation
type JobFacts struct {
	Title            string
	Platform         string
	Technologies     string
	Modules          string
	ExperienceLevel  string
	Location         string
	ContractType     string
	Responsibilities string
	Culture          string
}

// GenerateJobDescription produces marketing-style prose for a job
// posting. On failure it returns an explanatory placeholder string so
// callers always have something to render.
func (c *Client) GenerateJobDescription(ctx context.Context, facts JobFacts) string {
	prompt := buildDescribePrompt(facts)

	text, err := c.generate(ctx, genai.Part(genai.Text(prompt)))
	if err != nil {
		log.Printf("[Gemini] Job description generation failed: %v", err)
		return "Description generation failed. Please write the description manually or retry."
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "Description generation returned no content. Please write the description manually or retry."
	}

	return text
}

func buildDescribePrompt(facts JobFacts) string {
	var sb strings.Builder

	sb.WriteString("Write an engaging job posting description for the following role.\n\nJOB FACTS:\n")
	fmt.Fprintf(&sb, "Title: %s\n", facts.Title)
	fmt.Fprintf(&sb, "Platform: %s\n", facts.Platform)
	fmt.Fprintf(&sb, "Technologies: %s\n", facts.Technologies)
	if facts.Modules != "" {
		fmt.Fprintf(&sb, "Modules: %s\n", facts.Modules)
	}
	fmt.Fprintf(&sb, "Experience level: %s\n", facts.ExperienceLevel)
	fmt.Fprintf(&sb, "Location: %s\n", facts.Location)
	if facts.ContractType != "" {
		fmt.Fprintf(&sb, "Contract type: %s\n", facts.ContractType)
	}
	fmt.Fprintf(&sb, "Key responsibilities: %s\n", facts.Responsibilities)
	if facts.Culture != "" {
		fmt.Fprintf(&sb, "Company culture: %s\n", facts.Culture)
	}

	sb.WriteString(`
Structure the description in this exact section order:
1. A short engaging intro paragraph
2. Role overview
3. Responsibilities
4. Required skills`)

	section := 5
	if facts.Modules != "" {
		fmt.Fprintf(&sb, "\n%d. Preferred qualifications (cover the listed modules)", section)
		section++
	}
	if facts.Culture != "" {
		fmt.Fprintf(&sb, "\n%d. Why join us (company culture)", section)
		section++
	}
	fmt.Fprintf(&sb, "\n%d. A call to action inviting candidates to apply", section)

	sb.WriteString("\n\nReturn plain prose with section headings, no JSON, no markdown fences.")

	return sb.String()
}
