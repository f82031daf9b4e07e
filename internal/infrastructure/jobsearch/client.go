package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/domain/job"
	"career-compass/internal/pkg/logger"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://serpapi.com"

// HTTPClient queries an external job-search API (a SerpAPI-style
// google_jobs endpoint) and maps results into domain postings.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  logger.Logger
	now     func() time.Time
}

type searchResult struct {
	JobID              string `json:"job_id"`
	Title              string `json:"title"`
	CompanyName        string `json:"company_name"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	ShareURL           string `json:"share_url"`
	DetectedExtensions struct {
		PostedAt     string `json:"posted_at"`
		ScheduleType string `json:"schedule_type"`
		Salary       string `json:"salary"`
	} `json:"detected_extensions"`
	RelatedLinks []struct {
		Link string `json:"link"`
	} `json:"related_links"`
}

type searchResponse struct {
	JobsResults []searchResult `json:"jobs_results"`
	Error       string         `json:"error"`
}

func NewHTTPClient(cfg config.JobSearchConfig, log logger.Logger) (*HTTPClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("job search api key is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  log,
		now:     time.Now,
	}, nil
}

func (c *HTTPClient) SearchJobs(ctx context.Context, query, location string) ([]job.Posting, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil job search client")
	}

	q := url.Values{}
	q.Set("engine", "google_jobs")
	q.Set("q", query)
	q.Set("location", location)
	q.Set("api_key", c.apiKey)
	endpoint := c.baseURL + "/search.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		body := strings.TrimSpace(string(rb))
		c.logger.Warn("job search request failed",
			zap.Int("status", resp.StatusCode), zap.String("body", body))
		return nil, fmt.Errorf("job search failed: status=%d body=%s", resp.StatusCode, body)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("job search api error: %s", out.Error)
	}

	now := c.now().UTC()
	postings := make([]job.Posting, 0, len(out.JobsResults))
	for _, sr := range out.JobsResults {
		postings = append(postings, transformResult(sr, now))
	}

	c.logger.Info("job search fetched",
		zap.String("query", query), zap.String("location", location),
		zap.Int("count", len(postings)))

	return postings, nil
}
