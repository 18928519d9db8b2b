package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"folio/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "title", "slug", "excerpt", "content", "category", "featured_image", "published_date", "updated_date", "views",
	}).AddRow(1, "Shipping RAG", "shipping-rag", "How we shipped", "Body text", "technical", "", time.Now(), time.Now(), 12)

	mock.ExpectQuery("SELECT (.+) FROM blog_posts").
		WithArgs("technical", "rag", 3).
		WillReturnRows(rows)

	items, err := NewBlogPostgres(db).List(context.Background(), repository.PostFilter{Category: "technical", Search: "rag", Limit: 3})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "shipping-rag", items[0].Slug)
	assert.Equal(t, "Body text", items[0].Content)
	assert.NotNil(t, items[0].UpdatedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostgres_FindBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "title", "slug", "excerpt", "content", "category", "featured_image", "published_date", "updated_date", "views",
	}).AddRow(2, "Title", "title", "excerpt", "# Heading", "opinion", "blog/cover.png", time.Now(), nil, 0)

	mock.ExpectQuery("SELECT (.+) FROM blog_posts WHERE is_published AND slug = ").
		WithArgs("title").
		WillReturnRows(rows)

	p, err := NewBlogPostgres(db).FindBySlug(context.Background(), "title")

	require.NoError(t, err)
	assert.Equal(t, "# Heading", p.Content)
	assert.Nil(t, p.UpdatedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostgres_IncrementViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBlogPostgres(db)

	mock.ExpectQuery("UPDATE blog_posts SET views = views \\+ 1").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"views"}).AddRow(13))

	views, err := repo.IncrementViews(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 13, views)

	mock.ExpectQuery("UPDATE blog_posts").
		WithArgs(int64(3)).
		WillReturnError(errors.New("db down"))

	_, err = repo.IncrementViews(context.Background(), 3)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostgres_CategoryCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("GROUP BY category").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("technical", 3).
			AddRow("opinion", 1))

	counts, err := NewBlogPostgres(db).CategoryCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, counts["technical"])
	assert.Equal(t, 1, counts["opinion"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
