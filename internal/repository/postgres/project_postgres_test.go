package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"folio/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{
	"id", "title", "slug", "tagline", "thumbnail", "github_url", "live_demo_url",
	"is_featured", "created_at", "updated_at", "technologies",
}

func TestProjectPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	t.Run("featured with limit", func(t *testing.T) {
		rows := sqlmock.NewRows(projectRowColumns).
			AddRow(1, "RAG Engine", "rag-engine", "Answers from documents", "projects/rag.png", "https://github.com/x/rag", "",
				true, time.Now(), nil, []byte(`[{"id":3,"name":"Go","category":"Backend"}]`))

		mock.ExpectQuery("FROM projects p").
			WithArgs(true, 3).
			WillReturnRows(rows)

		items, err := repo.List(ctx, repository.ProjectFilter{FeaturedOnly: true, Limit: 3})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "rag-engine", items[0].Slug)
		assert.Nil(t, items[0].UpdatedAt)
		require.Len(t, items[0].Technologies, 1)
		assert.Equal(t, "Backend", items[0].Technologies[0].Category)
	})

	t.Run("unlimited passes NULL limit", func(t *testing.T) {
		mock.ExpectQuery("FROM projects p").
			WithArgs(false, nil).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		items, err := repo.List(ctx, repository.ProjectFilter{})

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectPostgres_FindBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	t.Run("with details", func(t *testing.T) {
		updated := time.Now()
		mock.ExpectQuery("WHERE p.is_published AND p.slug = ").
			WithArgs("rag-engine").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow(7, "RAG Engine", "rag-engine", "tagline", "", "", "", false, time.Now(), updated, []byte(`[]`)))

		mock.ExpectQuery("FROM project_details").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{
				"problem_statement", "solution_approach", "technology_justification", "technical_architecture",
				"key_features", "performance_metrics", "challenges_solved", "demo_video_url", "lessons_learned",
			}).AddRow("problem", "solution", "why", "", []byte(`["Streaming"]`),
				[]byte(`[{"metric":"Latency","improvement":"40% faster"}]`), "hard things", "", "lessons"))

		p, err := repo.FindBySlug(ctx, "rag-engine")

		require.NoError(t, err)
		require.NotNil(t, p.UpdatedAt)
		require.NotNil(t, p.Details)
		assert.Equal(t, []string{"Streaming"}, p.Details.KeyFeatures)
		assert.Equal(t, "40% faster", p.Details.PerformanceMetrics[0].Improvement)
	})

	t.Run("without details", func(t *testing.T) {
		mock.ExpectQuery("WHERE p.is_published AND p.slug = ").
			WithArgs("plain").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow(8, "Plain", "plain", "tagline", "", "", "", false, time.Now(), nil, []byte(`[]`)))
		mock.ExpectQuery("FROM project_details").
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindBySlug(ctx, "plain")

		require.NoError(t, err)
		assert.Nil(t, p.Details)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("WHERE p.is_published AND p.slug = ").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindBySlug(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectPostgres_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FILTER").
		WillReturnRows(sqlmock.NewRows([]string{"published", "featured"}).AddRow(5, 2))

	c, err := NewProjectPostgres(db).Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, repository.ProjectCounts{Published: 5, Featured: 2}, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}
