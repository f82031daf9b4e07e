package dto

import (
	"time"

	"career-compass/internal/usecase"

	"github.com/google/uuid"
)

type MatchItemResponse struct {
	JobID      uuid.UUID  `json:"job_id"`
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	Remote     bool       `json:"remote"`
	Hybrid     bool       `json:"hybrid"`
	SalaryMin  *int       `json:"salary_min,omitempty"`
	SalaryMax  *int       `json:"salary_max,omitempty"`
	PostedAt   *time.Time `json:"posted_at,omitempty"`
	ApplyURL   string     `json:"apply_url,omitempty"`
	MatchScore int        `json:"match_score"`
	Reasons    []string   `json:"reasons"`
}

type MatchListResponse struct {
	Matches []MatchItemResponse `json:"matches"`
	Count   int                 `json:"count"`
}

func NewMatchListResponse(items []usecase.JobMatchItem) MatchListResponse {
	out := make([]MatchItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MatchItemResponse{
			JobID:      it.JobID,
			Title:      it.Title,
			Company:    it.Company,
			Location:   it.Location,
			Remote:     it.Remote,
			Hybrid:     it.Hybrid,
			SalaryMin:  it.SalaryMin,
			SalaryMax:  it.SalaryMax,
			PostedAt:   it.PostedAt,
			ApplyURL:   it.ApplyURL,
			MatchScore: it.MatchScore,
			Reasons:    it.Reasons,
		})
	}
	return MatchListResponse{Matches: out, Count: len(out)}
}
