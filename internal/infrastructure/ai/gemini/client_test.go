package gemini

import (
	"strings"
	"testing"

	"career-compass/internal/domain/path"
)

const sampleResponse = `[
  {
    "role": "Product Manager (Music Technology)",
    "category": "related",
    "matchScore": 88,
    "reasoning": "Your product skills translate to music tech.",
    "salaryRange": "$120K-$180K",
    "sweetSpots": [{"skill": "Product Strategy", "explanation": "Transfers directly."}],
    "timeToTransition": "3-6 months",
    "difficulty": "easy",
    "icon": "M"
  },
  {
    "role": "Events Marketing Manager",
    "category": "stretch",
    "matchScore": 82,
    "reasoning": "Transferable communication skills.",
    "salaryRange": "$85K-$130K",
    "timeToTransition": "6-12 months",
    "difficulty": "moderate"
  }
]`

func TestParseCareerPaths_PlainJSON(t *testing.T) {
	paths, err := parseCareerPaths(sampleResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0].Role != "Product Manager (Music Technology)" {
		t.Fatalf("unexpected role: %q", paths[0].Role)
	}
	if paths[0].Category != path.CategoryRelated {
		t.Fatalf("unexpected category: %q", paths[0].Category)
	}
	if paths[0].MatchScore != 88 {
		t.Fatalf("unexpected match score: %d", paths[0].MatchScore)
	}
	if len(paths[0].SweetSpots) != 1 || paths[0].SweetSpots[0].Skill != "Product Strategy" {
		t.Fatalf("unexpected sweet spots: %+v", paths[0].SweetSpots)
	}
	if paths[1].Difficulty != path.DifficultyModerate {
		t.Fatalf("unexpected difficulty: %q", paths[1].Difficulty)
	}
}

func TestParseCareerPaths_FencedJSON(t *testing.T) {
	fenced := "```json\n" + sampleResponse + "\n```"
	paths, err := parseCareerPaths(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
}

func TestParseCareerPaths_Invalid(t *testing.T) {
	if _, err := parseCareerPaths("I could not produce JSON, sorry."); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := parseCareerPaths("[]"); err == nil {
		t.Fatalf("expected error for empty array")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(path.GenerationInput{
		CurrentRole: "Account Executive",
		Skills:      []string{"CRM", " Lead Qualification "},
		Interests:   []string{"music"},
	})

	for _, want := range []string{"Account Executive", "CRM, Lead Qualification", "music", "15 career paths"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "Tasks: Not specified") {
		t.Fatalf("expected empty tasks to render as Not specified")
	}
}
