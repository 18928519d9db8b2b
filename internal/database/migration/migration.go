package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"folio/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_tech_categories",
		SQL: `CREATE TABLE IF NOT EXISTS tech_categories (
  id         BIGSERIAL   PRIMARY KEY,
  name       TEXT        NOT NULL UNIQUE,
  sort_order INTEGER     NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_technologies",
		SQL: `CREATE TABLE IF NOT EXISTS technologies (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT      NOT NULL,
  category_id BIGINT    NOT NULL REFERENCES tech_categories (id) ON DELETE CASCADE,
  proficiency INTEGER   NOT NULL DEFAULT 3 CHECK (proficiency BETWEEN 1 AND 5),
  description TEXT      NOT NULL DEFAULT '',
  icon_url    TEXT      NOT NULL DEFAULT '',
  color       TEXT      NOT NULL DEFAULT '#3B82F6'
);`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id            BIGSERIAL   PRIMARY KEY,
  title         TEXT        NOT NULL,
  slug          TEXT        NOT NULL UNIQUE,
  tagline       TEXT        NOT NULL,
  thumbnail     TEXT        NOT NULL DEFAULT '',
  github_url    TEXT        NOT NULL DEFAULT '',
  live_demo_url TEXT        NOT NULL DEFAULT '',
  is_featured   BOOLEAN     NOT NULL DEFAULT false,
  is_published  BOOLEAN     NOT NULL DEFAULT true,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_project_technologies",
		SQL: `CREATE TABLE IF NOT EXISTS project_technologies (
  project_id    BIGINT NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  technology_id BIGINT NOT NULL REFERENCES technologies (id) ON DELETE CASCADE,
  PRIMARY KEY (project_id, technology_id)
);`,
	},
	{
		Name: "create_table_project_details",
		SQL: `CREATE TABLE IF NOT EXISTS project_details (
  project_id               BIGINT PRIMARY KEY REFERENCES projects (id) ON DELETE CASCADE,
  problem_statement        TEXT   NOT NULL,
  solution_approach        TEXT   NOT NULL,
  technology_justification TEXT   NOT NULL,
  technical_architecture   TEXT   NOT NULL DEFAULT '',
  key_features             JSONB  NOT NULL DEFAULT '[]',
  performance_metrics      JSONB  NOT NULL DEFAULT '[]',
  challenges_solved        TEXT   NOT NULL DEFAULT '',
  demo_video_url           TEXT   NOT NULL DEFAULT '',
  lessons_learned          TEXT   NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_blog_posts",
		SQL: `CREATE TABLE IF NOT EXISTS blog_posts (
  id             BIGSERIAL   PRIMARY KEY,
  title          TEXT        NOT NULL,
  slug           TEXT        NOT NULL UNIQUE,
  excerpt        TEXT        NOT NULL,
  content        TEXT        NOT NULL,
  category       TEXT        NOT NULL,
  featured_image TEXT        NOT NULL DEFAULT '',
  published_date TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_date   TIMESTAMPTZ,
  is_published   BOOLEAN     NOT NULL DEFAULT false,
  views          INTEGER     NOT NULL DEFAULT 0 CHECK (views >= 0)
);`,
	},
	{
		Name: "create_table_career_highlights",
		SQL: `CREATE TABLE IF NOT EXISTS career_highlights (
  id           BIGSERIAL PRIMARY KEY,
  title        TEXT      NOT NULL,
  organization TEXT      NOT NULL,
  date_range   TEXT      NOT NULL,
  description  TEXT      NOT NULL,
  metrics      JSONB     NOT NULL DEFAULT '[]',
  is_current   BOOLEAN   NOT NULL DEFAULT false,
  sort_order   INTEGER   NOT NULL DEFAULT 0
);`,
	},
	{
		Name: "create_table_site_configuration",
		SQL: `CREATE TABLE IF NOT EXISTS site_configuration (
  id                   BIGSERIAL   PRIMARY KEY,
  site_name            TEXT        NOT NULL,
  tagline              TEXT        NOT NULL,
  bio                  TEXT        NOT NULL,
  location             TEXT        NOT NULL DEFAULT '',
  email                TEXT        NOT NULL,
  phone                TEXT        NOT NULL DEFAULT '',
  github_url           TEXT        NOT NULL DEFAULT '',
  linkedin_url         TEXT        NOT NULL DEFAULT '',
  twitter_url          TEXT        NOT NULL DEFAULT '',
  bluesky_handle       TEXT        NOT NULL DEFAULT '',
  cal_com_username     TEXT        NOT NULL DEFAULT '',
  calendar_url         TEXT        NOT NULL DEFAULT '',
  resume_url           TEXT        NOT NULL DEFAULT '',
  profile_image        TEXT        NOT NULL DEFAULT '',
  meta_description     TEXT        NOT NULL DEFAULT '',
  meta_keywords        TEXT        NOT NULL DEFAULT '',
  show_resume_download BOOLEAN     NOT NULL DEFAULT false,
  years_experience     INTEGER     NOT NULL DEFAULT 0,
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_contact_submissions",
		SQL: `CREATE TABLE IF NOT EXISTS contact_submissions (
  id           BIGSERIAL   PRIMARY KEY,
  name         TEXT        NOT NULL,
  email        TEXT        NOT NULL,
  company      TEXT        NOT NULL DEFAULT '',
  subject      TEXT        NOT NULL,
  message      TEXT        NOT NULL,
  submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  is_read      BOOLEAN     NOT NULL DEFAULT false
);`,
	},
	{
		Name: "create_index_projects_published_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_projects_published_created_at ON projects (is_published, created_at DESC);`,
	},
	{
		Name: "create_index_blog_posts_published_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_posts_published_date ON blog_posts (is_published, published_date DESC);`,
	},
	{
		Name: "create_index_blog_posts_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blog_posts_category ON blog_posts (category);`,
	},
	{
		Name: "create_index_contact_submissions_submitted_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_submissions_submitted_at ON contact_submissions (submitted_at DESC);`,
	},
}

// EnsureMigrated checks if the 'projects' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logger.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(logger.String("component", "database"), logger.String("db_host", dbHost))

	log.Info("db_migration_check", logger.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.projects') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			logger.String("status", "error"),
			logger.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			logger.String("status", "success"),
			logger.String("detail", "schema already exists, skipping migration"),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", logger.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				logger.String("status", "error"),
				logger.String("migration_step", step.Name),
				logger.String("error_message", err.Error()),
				logger.Int64("duration_ms", time.Since(start).Milliseconds()),
				logger.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			logger.String("status", "success"),
			logger.String("migration_step", step.Name),
			logger.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		logger.String("status", "success"),
		logger.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
