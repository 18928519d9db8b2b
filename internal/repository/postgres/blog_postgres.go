package postgres

import (
	"context"
	"database/sql"

	"folio/internal/model"
	"folio/internal/repository"
)

// BlogPostgres is a PostgreSQL implementation of repository.BlogRepository.
type BlogPostgres struct {
	db *sql.DB
}

// NewBlogPostgres creates a new BlogPostgres repository.
func NewBlogPostgres(db *sql.DB) *BlogPostgres {
	return &BlogPostgres{db: db}
}

var _ repository.BlogRepository = (*BlogPostgres)(nil)

// List returns published posts, newest first. Content is included so callers
// can derive the reading time.
func (r *BlogPostgres) List(ctx context.Context, f repository.PostFilter) ([]model.BlogPost, error) {
	const q = `
		SELECT id, title, slug, excerpt, content, category, featured_image, published_date, updated_date, views
		FROM blog_posts
		WHERE is_published
		  AND ($1 = '' OR category = $1)
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR excerpt ILIKE '%' || $2 || '%')
		ORDER BY published_date DESC, id DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, q, f.Category, f.Search, limitArg(f.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BlogPost, 0)
	for rows.Next() {
		var (
			p       model.BlogPost
			updated sql.NullTime
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Slug,
			&p.Excerpt,
			&p.Content,
			&p.Category,
			&p.FeaturedImage,
			&p.PublishedDate,
			&updated,
			&p.Views,
		); err != nil {
			return nil, err
		}
		if updated.Valid {
			p.UpdatedDate = &updated.Time
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySlug fetches a single published post including content.
func (r *BlogPostgres) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	const q = `
		SELECT id, title, slug, excerpt, content, category, featured_image, published_date, updated_date, views
		FROM blog_posts
		WHERE is_published AND slug = $1
	`
	var (
		p       model.BlogPost
		updated sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.Category,
		&p.FeaturedImage,
		&p.PublishedDate,
		&updated,
		&p.Views,
	); err != nil {
		return nil, err
	}
	if updated.Valid {
		p.UpdatedDate = &updated.Time
	}
	return &p, nil
}

// IncrementViews bumps the counter atomically in the database.
func (r *BlogPostgres) IncrementViews(ctx context.Context, id int64) (int, error) {
	const q = `UPDATE blog_posts SET views = views + 1 WHERE id = $1 RETURNING views`
	var views int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&views); err != nil {
		return 0, err
	}
	return views, nil
}

// CategoryCounts groups published posts by category.
func (r *BlogPostgres) CategoryCounts(ctx context.Context) (model.BlogCategories, error) {
	const q = `SELECT category, COUNT(*) FROM blog_posts WHERE is_published GROUP BY category`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(model.BlogCategories)
	for rows.Next() {
		var (
			category string
			n        int
		)
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		out[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
