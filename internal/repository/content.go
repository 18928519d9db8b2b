package repository

import (
	"context"

	"folio/internal/model"
)

// ProjectRepository reads published projects.
type ProjectRepository interface {
	// List returns published projects newest first, each with its technologies.
	List(ctx context.Context, f ProjectFilter) ([]model.Project, error)

	// FindBySlug returns a published project with technologies and details.
	// It returns sql.ErrNoRows when no published project has the slug.
	FindBySlug(ctx context.Context, slug string) (*model.Project, error)

	// Counts returns the number of published and featured projects.
	Counts(ctx context.Context) (ProjectCounts, error)
}

// BlogRepository reads published posts and maintains view counters.
type BlogRepository interface {
	// List returns published posts newest first, without content.
	List(ctx context.Context, f PostFilter) ([]model.BlogPost, error)

	// FindBySlug returns a published post including its content.
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)

	// IncrementViews adds one view to the post and returns the new count.
	IncrementViews(ctx context.Context, id int64) (int, error)

	// CategoryCounts returns published post counts keyed by category.
	CategoryCounts(ctx context.Context) (model.BlogCategories, error)
}

// TechRepository reads the technology catalogue.
type TechRepository interface {
	// List returns all technologies ordered by category then name.
	List(ctx context.Context) ([]model.Technology, error)

	// Grouped returns non-empty categories in display order with their technologies.
	Grouped(ctx context.Context) ([]model.TechCategory, error)

	// Count returns the number of technologies.
	Count(ctx context.Context) (int, error)
}

// CoreRepository reads site-wide records.
type CoreRepository interface {
	// SiteConfig returns the single configuration row, or sql.ErrNoRows if none is stored.
	SiteConfig(ctx context.Context) (*model.SiteConfig, error)

	// Highlights returns career highlights, current roles first.
	Highlights(ctx context.Context) ([]model.CareerHighlight, error)
}

// ContactRepository persists contact submissions.
type ContactRepository interface {
	// Create stores a submission and returns it with ID and SubmittedAt set by the database.
	Create(ctx context.Context, s *model.ContactSubmission) (*model.ContactSubmission, error)

	// List returns a page of submissions, newest first, and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.ContactSubmission], error)
}
