package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_profiles
		   (user_id, current_role_title, current_company, matching_tags, selected_skills,
		    selected_tasks, interests, locations, include_remote, desired_salary_min,
		    desired_salary_max, work_environment_pref, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   current_role_title = EXCLUDED.current_role_title,
		   current_company = EXCLUDED.current_company,
		   matching_tags = EXCLUDED.matching_tags,
		   selected_skills = EXCLUDED.selected_skills,
		   selected_tasks = EXCLUDED.selected_tasks,
		   interests = EXCLUDED.interests,
		   locations = EXCLUDED.locations,
		   include_remote = EXCLUDED.include_remote,
		   desired_salary_min = EXCLUDED.desired_salary_min,
		   desired_salary_max = EXCLUDED.desired_salary_max,
		   work_environment_pref = EXCLUDED.work_environment_pref,
		   updated_at = NOW()`,
		p.UserID, p.CurrentRole, p.CurrentCompany, p.MatchingTags, p.SelectedSkills,
		p.SelectedTasks, p.Interests, p.Locations, p.IncludeRemote, p.DesiredSalaryMin,
		p.DesiredSalaryMax, string(p.WorkEnvironmentPref),
	)
	return err
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(current_role_title, ''), COALESCE(current_company, ''),
		        matching_tags, selected_skills, selected_tasks, interests, locations,
		        include_remote, desired_salary_min, desired_salary_max,
		        COALESCE(work_environment_pref, 'flexible'), created_at, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	)

	var (
		p    user.Profile
		pref string
	)
	if err := row.Scan(
		&p.UserID, &p.CurrentRole, &p.CurrentCompany,
		&p.MatchingTags, &p.SelectedSkills, &p.SelectedTasks, &p.Interests, &p.Locations,
		&p.IncludeRemote, &p.DesiredSalaryMin, &p.DesiredSalaryMax,
		&pref, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrNotFound
		}
		return user.Profile{}, err
	}
	p.WorkEnvironmentPref = user.WorkEnvironment(pref)
	return p, nil
}

var _ user.ProfileRepository = (*PostgresProfileRepository)(nil)
