package repository

import (
	"context"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	ListActive(ctx context.Context, limit, offset int) ([]job.Posting, error)
	Upsert(ctx context.Context, postings []job.Posting) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, external_job_id, COALESCE(title, ''), COALESCE(company, ''),
		        COALESCE(location, ''), COALESCE(description, ''), remote, hybrid,
		        salary_min, salary_max, posted_at, COALESCE(seniority, ''),
		        COALESCE(apply_url, ''), COALESCE(source, ''), tags, scraped_at, created_at
		 FROM job_postings
		 WHERE is_active
		 ORDER BY posted_at DESC NULLS LAST, created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var (
			p         job.Posting
			seniority string
		)
		p.IsActive = true
		if err := rows.Scan(
			&p.ID, &p.ExternalJobID, &p.Title, &p.Company,
			&p.Location, &p.Description, &p.Remote, &p.Hybrid,
			&p.SalaryMin, &p.SalaryMax, &p.PostedAt, &seniority,
			&p.ApplyURL, &p.Source, &p.Tags, &p.ScrapedAt, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Seniority = job.Seniority(seniority)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts postings keyed by their external job id, refreshing
// mutable fields and the scraped_at stamp on conflict.
func (r *PostgresJobRepository) Upsert(ctx context.Context, postings []job.Posting) error {
	now := time.Now().UTC()
	for _, p := range postings {
		id := p.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		scrapedAt := now
		if p.ScrapedAt != nil {
			scrapedAt = *p.ScrapedAt
		}

		_, err := r.db.Exec(ctx,
			`INSERT INTO job_postings
			   (id, external_job_id, title, company, location, description, remote, hybrid,
			    salary_min, salary_max, posted_at, seniority, apply_url, source, tags,
			    scraped_at, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, TRUE)
			 ON CONFLICT (external_job_id) DO UPDATE SET
			   title = EXCLUDED.title,
			   company = EXCLUDED.company,
			   location = EXCLUDED.location,
			   description = EXCLUDED.description,
			   remote = EXCLUDED.remote,
			   hybrid = EXCLUDED.hybrid,
			   salary_min = EXCLUDED.salary_min,
			   salary_max = EXCLUDED.salary_max,
			   posted_at = EXCLUDED.posted_at,
			   seniority = EXCLUDED.seniority,
			   apply_url = EXCLUDED.apply_url,
			   source = EXCLUDED.source,
			   tags = EXCLUDED.tags,
			   scraped_at = EXCLUDED.scraped_at,
			   is_active = TRUE`,
			id, p.ExternalJobID, p.Title, p.Company, p.Location, p.Description,
			p.Remote, p.Hybrid, p.SalaryMin, p.SalaryMax, p.PostedAt,
			string(p.Seniority), p.ApplyURL, p.Source, p.Tags, scrapedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
