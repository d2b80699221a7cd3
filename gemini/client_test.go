package gemini

import (
	"strings"
	"testing"
)

func TestCleanJSONStripsMarkdownFences(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"```json\n{\"score\":50}\n```": `{"score":50}`,
		"```\n{\"score\":50}\n```":     `{"score":50}`,
		`{"score":50}`:                 `{"score":50}`,
		"  {\"score\":50}  ":           `{"score":50}`,
	}

	for in, want := range cases {
		if got := cleanJSON(in); got != want {
			t.Fatalf("cleanJSON(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildQuestionsPromptIncludesWeaknesses(t *testing.T) {
	t.Parallel()

	prompt := buildQuestionsPrompt("Backend Engineer", "Build APIs",
		[]string{"Strong Go experience"}, []string{"No cloud exposure"})

	if !strings.Contains(prompt, "Strong Go experience") {
		t.Fatal("expected strengths in prompt")
	}
	if !strings.Contains(prompt, "No cloud exposure") {
		t.Fatal("expected weaknesses in prompt")
	}
	if !strings.Contains(prompt, "never accusatorially") {
		t.Fatal("expected constructive-tone instruction")
	}
}

func TestBuildQuestionsPromptOmitsEmptySections(t *testing.T) {
	t.Parallel()

	prompt := buildQuestionsPrompt("Backend Engineer", "Build APIs", nil, nil)

	if strings.Contains(prompt, "CANDIDATE STRENGTHS") || strings.Contains(prompt, "CANDIDATE WEAKNESSES") {
		t.Fatal("expected no analysis sections when lists are empty")
	}
}

func TestQuestionsPlaceholderFillsAllCategories(t *testing.T) {
	t.Parallel()

	q := questionsPlaceholder("the model returned no questions")

	for _, list := range [][]string{q.Technical, q.Behavioral, q.Situational} {
		if len(list) != 1 {
			t.Fatalf("expected one placeholder per category, got %v", list)
		}
		if !strings.Contains(list[0], "Please retry") {
			t.Fatalf("expected retry guidance, got %q", list[0])
		}
	}
}
