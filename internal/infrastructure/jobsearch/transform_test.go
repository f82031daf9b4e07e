package jobsearch

import (
	"testing"
	"time"

	"career-compass/internal/domain/job"
)

func TestParseSalaryRange(t *testing.T) {
	cases := []struct {
		raw      string
		min, max int
		ok       bool
	}{
		{"$90,000 - $120,000 a year", 90000, 120000, true},
		{"90000-120000", 90000, 120000, true},
		{"$45 - $60 an hour", 45 * 2080, 60 * 2080, true},
		{"$120,000 - $90,000", 90000, 120000, true},
		{"competitive", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		min, max, ok := parseSalaryRange(tc.raw)
		if ok != tc.ok || min != tc.min || max != tc.max {
			t.Errorf("parseSalaryRange(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tc.raw, min, max, ok, tc.min, tc.max, tc.ok)
		}
	}
}

func TestParsePostedAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	got := parsePostedAt("3 days ago", now)
	if got == nil || !got.Equal(now.Add(-3*24*time.Hour)) {
		t.Fatalf("3 days ago: got %v", got)
	}

	got = parsePostedAt("2 hours ago", now)
	if got == nil || !got.Equal(now.Add(-2*time.Hour)) {
		t.Fatalf("2 hours ago: got %v", got)
	}

	got = parsePostedAt("2026-08-01T00:00:00Z", now)
	if got == nil || got.Day() != 1 {
		t.Fatalf("rfc3339: got %v", got)
	}

	if got = parsePostedAt("recently", now); got != nil {
		t.Fatalf("unparseable input should return nil, got %v", got)
	}
	if got = parsePostedAt("", now); got != nil {
		t.Fatalf("empty input should return nil, got %v", got)
	}
}

func TestDetectRemote(t *testing.T) {
	if !detectRemote("Software Engineer (Remote)", "", "") {
		t.Error("remote in title not detected")
	}
	if !detectRemote("Data Analyst", "", "Anywhere") {
		t.Error("anywhere location not detected")
	}
	if !detectRemote("Designer", "This role is fully remote.", "Austin, TX") {
		t.Error("fully remote description not detected")
	}
	if detectRemote("Backend Engineer", "Hybrid schedule, 3 days in office.", "Seattle, WA") {
		t.Error("hybrid posting flagged as remote")
	}
}

func TestCleanLocation(t *testing.T) {
	cases := map[string]string{
		"Austin, TX (+2 others)":        "Austin, TX",
		"New York, NY, United States":   "New York, NY",
		"San Francisco, CA, USA":        "San Francisco, CA",
		"  Denver, CO  ":                "Denver, CO",
		"Remote (United States)":        "Remote",
	}
	for raw, want := range cases {
		if got := cleanLocation(raw); got != want {
			t.Errorf("cleanLocation(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestTransformResult(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	sr := searchResult{
		JobID:       "abc123",
		Title:       "Senior Python Engineer (Remote)",
		CompanyName: "Acme Corp",
		Location:    "Austin, TX (+1 other)",
		Description: "Build services with Python and SQL on AWS.",
		ShareURL:    "https://example.com/job/abc123",
	}
	sr.DetectedExtensions.Salary = "$140,000 - $180,000 a year"
	sr.DetectedExtensions.PostedAt = "5 days ago"

	p := transformResult(sr, now)

	if p.ExternalJobID != "abc123" || p.Company != "Acme Corp" {
		t.Fatalf("identity fields: %+v", p)
	}
	if p.Location != "Austin, TX" {
		t.Errorf("location = %q", p.Location)
	}
	if !p.Remote {
		t.Error("expected remote detection from title")
	}
	if p.SalaryMin == nil || p.SalaryMax == nil || *p.SalaryMin != 140000 || *p.SalaryMax != 180000 {
		t.Errorf("salary = %v %v", p.SalaryMin, p.SalaryMax)
	}
	if p.PostedAt == nil || !p.PostedAt.Equal(now.Add(-5*24*time.Hour)) {
		t.Errorf("posted at = %v", p.PostedAt)
	}
	if p.Seniority != job.SenioritySenior {
		t.Errorf("seniority = %q", p.Seniority)
	}

	wantTags := map[string]bool{"python": true, "sql": true, "aws": true}
	for _, tag := range p.Tags {
		delete(wantTags, tag)
	}
	if len(wantTags) != 0 {
		t.Errorf("missing tags %v in %v", wantTags, p.Tags)
	}

	if err := p.Validate(); err != nil {
		t.Fatalf("transformed posting should be valid: %v", err)
	}
}
