package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"folio/internal/model"
	"folio/internal/repository"
)

// CorePostgres is a PostgreSQL implementation of repository.CoreRepository.
type CorePostgres struct {
	db *sql.DB
}

// NewCorePostgres creates a new CorePostgres repository.
func NewCorePostgres(db *sql.DB) *CorePostgres {
	return &CorePostgres{db: db}
}

var _ repository.CoreRepository = (*CorePostgres)(nil)

// SiteConfig returns the oldest configuration row.
func (r *CorePostgres) SiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	const q = `
		SELECT site_name, tagline, bio, location, email, phone, github_url, linkedin_url, twitter_url,
		       bluesky_handle, cal_com_username, calendar_url, resume_url, profile_image,
		       meta_description, meta_keywords, show_resume_download, years_experience
		FROM site_configuration
		ORDER BY id
		LIMIT 1
	`
	var c model.SiteConfig
	if err := r.db.QueryRowContext(ctx, q).Scan(
		&c.SiteName,
		&c.Tagline,
		&c.Bio,
		&c.Location,
		&c.Email,
		&c.Phone,
		&c.GithubURL,
		&c.LinkedinURL,
		&c.TwitterURL,
		&c.BlueskyHandle,
		&c.CalComUsername,
		&c.CalendarURL,
		&c.ResumeURL,
		&c.ProfileImage,
		&c.MetaDescription,
		&c.MetaKeywords,
		&c.ShowResumeDownload,
		&c.YearsExperience,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Highlights returns highlights ordered current first, then by order and id descending.
func (r *CorePostgres) Highlights(ctx context.Context) ([]model.CareerHighlight, error) {
	const q = `
		SELECT id, title, organization, date_range, description, metrics, is_current, sort_order
		FROM career_highlights
		ORDER BY is_current DESC, sort_order DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CareerHighlight, 0)
	for rows.Next() {
		var (
			h       model.CareerHighlight
			metrics []byte
		)
		if err := rows.Scan(
			&h.ID,
			&h.Title,
			&h.Organization,
			&h.DateRange,
			&h.Description,
			&metrics,
			&h.IsCurrent,
			&h.Order,
		); err != nil {
			return nil, err
		}
		h.Metrics = make([]string, 0)
		if err := unmarshalJSON(metrics, &h.Metrics); err != nil {
			return nil, fmt.Errorf("decode metrics: %w", err)
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
