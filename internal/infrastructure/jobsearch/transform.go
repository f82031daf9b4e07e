package jobsearch

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/job"
)

var (
	salaryRangeRe = regexp.MustCompile(`\$?([\d,]+)\s*-\s*\$?([\d,]+)`)
	relativeAgoRe = regexp.MustCompile(`(?i)^(\d+)\s+(hour|day|week|month)s?\s+ago$`)
)

var skillKeywords = []string{
	"python", "javascript", "typescript", "java", "golang", "go", "rust",
	"react", "node", "sql", "postgres", "aws", "gcp", "azure", "docker",
	"kubernetes", "terraform", "machine learning", "data analysis",
	"project management", "product management", "ux", "design",
	"marketing", "sales", "customer success", "devops", "security",
}

func transformResult(sr searchResult, now time.Time) job.Posting {
	title := strings.TrimSpace(sr.Title)
	desc := strings.TrimSpace(sr.Description)
	location := cleanLocation(sr.Location)

	p := job.Posting{
		ID:            uuid.New(),
		ExternalJobID: strings.TrimSpace(sr.JobID),
		Title:         title,
		Company:       strings.TrimSpace(sr.CompanyName),
		Location:      location,
		Description:   desc,
		Remote:        detectRemote(title, desc, location),
		Hybrid:        detectHybrid(title, desc, location),
		ApplyURL:      strings.TrimSpace(sr.ShareURL),
		Source:        "google_jobs",
		Tags:          extractTags(title, desc),
		Seniority:     detectSeniority(title),
		ScrapedAt:     &now,
		IsActive:      true,
		CreatedAt:     now,
	}

	if min, max, ok := parseSalaryRange(sr.DetectedExtensions.Salary); ok {
		p.SalaryMin = &min
		p.SalaryMax = &max
	}
	if posted := parsePostedAt(sr.DetectedExtensions.PostedAt, now); posted != nil {
		p.PostedAt = posted
	}
	if p.ApplyURL == "" && len(sr.RelatedLinks) > 0 {
		p.ApplyURL = strings.TrimSpace(sr.RelatedLinks[0].Link)
	}

	return p
}

// parseSalaryRange pulls a "$90,000 - $120,000" style range out of the
// free-text salary field. Values under 1000 are treated as hourly rates
// and annualized at 2080 hours.
func parseSalaryRange(raw string) (min, max int, ok bool) {
	m := salaryRangeRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	hi, err2 := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
	if err1 != nil || err2 != nil || lo <= 0 || hi <= 0 {
		return 0, 0, false
	}
	if lo < 1000 && hi < 1000 {
		lo *= 2080
		hi *= 2080
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

func parsePostedAt(raw string, now time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t
	}
	m := relativeAgoRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	var d time.Duration
	switch strings.ToLower(m[2]) {
	case "hour":
		d = time.Duration(n) * time.Hour
	case "day":
		d = time.Duration(n) * 24 * time.Hour
	case "week":
		d = time.Duration(n) * 7 * 24 * time.Hour
	case "month":
		d = time.Duration(n) * 30 * 24 * time.Hour
	}
	t := now.Add(-d)
	return &t
}

func detectRemote(title, desc, location string) bool {
	hay := strings.ToLower(title + " " + location)
	if strings.Contains(hay, "remote") || strings.Contains(hay, "anywhere") {
		return true
	}
	return strings.Contains(strings.ToLower(desc), "fully remote")
}

func detectHybrid(title, desc, location string) bool {
	hay := strings.ToLower(title + " " + desc + " " + location)
	return strings.Contains(hay, "hybrid")
}

func detectSeniority(title string) job.Seniority {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "intern"):
		return job.SeniorityEntry
	case strings.Contains(t, "junior") || strings.Contains(t, "entry"):
		return job.SeniorityEntry
	case strings.Contains(t, "principal") || strings.Contains(t, "staff"):
		return job.SenioritySenior
	case strings.Contains(t, "senior") || strings.Contains(t, "sr."):
		return job.SenioritySenior
	case strings.Contains(t, "lead") || strings.Contains(t, "manager") || strings.Contains(t, "head of"):
		return job.SeniorityLead
	default:
		return job.SeniorityMid
	}
}

func extractTags(title, desc string) []string {
	hay := strings.ToLower(title + " " + desc)
	var tags []string
	for _, kw := range skillKeywords {
		if strings.Contains(hay, kw) {
			tags = append(tags, kw)
		}
	}
	return tags
}

// cleanLocation strips parenthetical qualifiers like "(+2 others)" and
// trailing country suffixes the search API appends.
func cleanLocation(raw string) string {
	loc := strings.TrimSpace(raw)
	if i := strings.Index(loc, "("); i >= 0 {
		loc = strings.TrimSpace(loc[:i])
	}
	loc = strings.TrimSuffix(loc, ", United States")
	loc = strings.TrimSuffix(loc, ", USA")
	return strings.TrimSpace(strings.Trim(loc, ","))
}
