package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"folio/internal/model"
	"folio/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

// projectColumns selects a project row with its technologies aggregated as a JSON array.
const projectColumns = `
		p.id, p.title, p.slug, p.tagline, p.thumbnail, p.github_url, p.live_demo_url,
		p.is_featured, p.created_at, p.updated_at,
		COALESCE(
			json_agg(json_build_object(
				'id', t.id, 'name', t.name, 'category', c.name, 'proficiency', t.proficiency,
				'description', t.description, 'icon_url', t.icon_url, 'color', t.color
			) ORDER BY t.name) FILTER (WHERE t.id IS NOT NULL),
			'[]'
		) AS technologies`

const projectJoins = `
		FROM projects p
		LEFT JOIN project_technologies pt ON pt.project_id = p.id
		LEFT JOIN technologies t ON t.id = pt.technology_id
		LEFT JOIN tech_categories c ON c.id = t.category_id`

// List returns published projects newest first.
func (r *ProjectPostgres) List(ctx context.Context, f repository.ProjectFilter) ([]model.Project, error) {
	q := `SELECT` + projectColumns + projectJoins + `
		WHERE p.is_published AND ($1 = false OR p.is_featured)
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, q, f.FeaturedOnly, limitArg(f.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySlug fetches a published project and its optional detail record.
func (r *ProjectPostgres) FindBySlug(ctx context.Context, slug string) (*model.Project, error) {
	q := `SELECT` + projectColumns + projectJoins + `
		WHERE p.is_published AND p.slug = $1
		GROUP BY p.id`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		return nil, err
	}

	details, err := r.findDetails(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Details = details
	return p, nil
}

func (r *ProjectPostgres) findDetails(ctx context.Context, projectID int64) (*model.ProjectDetail, error) {
	const q = `
		SELECT problem_statement, solution_approach, technology_justification, technical_architecture,
		       key_features, performance_metrics, challenges_solved, demo_video_url, lessons_learned
		FROM project_details
		WHERE project_id = $1
	`
	var (
		d        model.ProjectDetail
		features []byte
		metrics  []byte
	)
	err := r.db.QueryRowContext(ctx, q, projectID).Scan(
		&d.ProblemStatement,
		&d.SolutionApproach,
		&d.TechnologyJustification,
		&d.TechnicalArchitecture,
		&features,
		&metrics,
		&d.ChallengesSolved,
		&d.DemoVideoURL,
		&d.LessonsLearned,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(features, &d.KeyFeatures); err != nil {
		return nil, fmt.Errorf("decode key_features: %w", err)
	}
	if err := unmarshalJSON(metrics, &d.PerformanceMetrics); err != nil {
		return nil, fmt.Errorf("decode performance_metrics: %w", err)
	}
	return &d, nil
}

// Counts returns published and featured totals in one pass.
func (r *ProjectPostgres) Counts(ctx context.Context) (repository.ProjectCounts, error) {
	const q = `
		SELECT COUNT(*) FILTER (WHERE is_published),
		       COUNT(*) FILTER (WHERE is_published AND is_featured)
		FROM projects
	`
	var c repository.ProjectCounts
	if err := r.db.QueryRowContext(ctx, q).Scan(&c.Published, &c.Featured); err != nil {
		return repository.ProjectCounts{}, err
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (*model.Project, error) {
	var (
		p       model.Project
		updated sql.NullTime
		techs   []byte
	)
	if err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Tagline,
		&p.Thumbnail,
		&p.GithubURL,
		&p.LiveDemoURL,
		&p.IsFeatured,
		&p.CreatedAt,
		&updated,
		&techs,
	); err != nil {
		return nil, err
	}
	if updated.Valid {
		p.UpdatedAt = &updated.Time
	}
	p.Technologies = make([]model.Technology, 0)
	if err := unmarshalJSON(techs, &p.Technologies); err != nil {
		return nil, fmt.Errorf("decode technologies: %w", err)
	}
	return &p, nil
}

// unmarshalJSON decodes a JSON column, treating NULL as empty.
func unmarshalJSON(b []byte, v any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, v)
}

// limitArg maps a non-positive limit to NULL, which Postgres treats as LIMIT ALL.
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
