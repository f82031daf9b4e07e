package usecase

import (
	"strings"
	"testing"
)

func TestCareerPathsCacheKey_OrderAndCasingInvariant(t *testing.T) {
	a := CareerPathsCacheKey("Engineer", []string{"SQL", "Excel"}, nil, nil)
	b := CareerPathsCacheKey(" engineer ", []string{"excel", "sql"}, nil, nil)

	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
}

func TestCareerPathsCacheKey_WhitespaceInvariant(t *testing.T) {
	a := CareerPathsCacheKey("PM", []string{"data analysis"}, []string{"roadmaps"}, []string{"music"})
	b := CareerPathsCacheKey("PM", []string{"  Data Analysis  "}, []string{" Roadmaps"}, []string{"MUSIC "})

	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
}

func TestCareerPathsCacheKey_DistinguishesFields(t *testing.T) {
	a := CareerPathsCacheKey("engineer", []string{"sql"}, nil, nil)
	b := CareerPathsCacheKey("engineer", nil, []string{"sql"}, nil)

	if a == b {
		t.Fatalf("skills and tasks must not be interchangeable: %q", a)
	}
}

func TestCareerPathsCacheKey_Format(t *testing.T) {
	key := CareerPathsCacheKey("designer", []string{"figma"}, nil, []string{"art"})

	if !strings.HasPrefix(key, "paths_") {
		t.Fatalf("missing namespace prefix: %q", key)
	}
	if len(key) <= len("paths_") {
		t.Fatalf("empty hash portion: %q", key)
	}
}

func TestCareerPathsCacheKey_Deterministic(t *testing.T) {
	first := CareerPathsCacheKey("analyst", []string{"excel", "sql"}, []string{"reporting"}, nil)
	for i := 0; i < 10; i++ {
		if got := CareerPathsCacheKey("analyst", []string{"excel", "sql"}, []string{"reporting"}, nil); got != first {
			t.Fatalf("key not deterministic: %q vs %q", got, first)
		}
	}
}
