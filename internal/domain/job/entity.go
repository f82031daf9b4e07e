package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Seniority string

const (
	SeniorityEntry     Seniority = "entry"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityExecutive Seniority = "executive"
)

var ErrInvalidSalaryRange = errors.New("salary min greater than salary max")

// Posting is a job posting fetched from an external search source.
// It is read-only for the matching engine.
type Posting struct {
	ID            uuid.UUID
	ExternalJobID string
	Title         string
	Company       string
	Location      string
	Description   string
	Remote        bool
	Hybrid        bool
	SalaryMin     *int
	SalaryMax     *int
	PostedAt      *time.Time
	Seniority     Seniority
	ApplyURL      string
	Source        string
	Tags          []string
	ScrapedAt     *time.Time
	IsActive      bool
	CreatedAt     time.Time
}

// Validate reports whether the posting is well-formed enough to score.
// The upstream source does not guarantee salary_min <= salary_max, so
// inverted ranges are rejected here rather than scored.
func (p Posting) Validate() error {
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		return ErrInvalidSalaryRange
	}
	return nil
}
