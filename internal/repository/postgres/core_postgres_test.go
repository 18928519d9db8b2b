package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorePostgres_SiteConfig(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCorePostgres(db)

	cols := []string{
		"site_name", "tagline", "bio", "location", "email", "phone", "github_url", "linkedin_url", "twitter_url",
		"bluesky_handle", "cal_com_username", "calendar_url", "resume_url", "profile_image",
		"meta_description", "meta_keywords", "show_resume_download", "years_experience",
	}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM site_configuration").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(
				"Ada", "Engineer", "Bio", "Remote", "ada@example.com", "", "https://github.com/ada", "", "",
				"", "ada", "", "resume/ada.pdf", "", "desc", "kw", true, 7))

		cfg, err := repo.SiteConfig(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Ada", cfg.SiteName)
		assert.True(t, cfg.ShowResumeDownload)
		assert.Equal(t, 7, cfg.YearsExperience)
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("FROM site_configuration").WillReturnError(sql.ErrNoRows)

		cfg, err := repo.SiteConfig(context.Background())

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, cfg)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCorePostgres_Highlights(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "organization", "date_range", "description", "metrics", "is_current", "sort_order"}).
		AddRow(2, "AI Engineer", "VS Soft", "2023 - Present", "LLM systems", []byte(`["40% faster"]`), true, 5).
		AddRow(1, "Intern", "Lab", "2022", "Research", nil, false, 1)

	mock.ExpectQuery("ORDER BY is_current DESC, sort_order DESC, id DESC").WillReturnRows(rows)

	items, err := NewCorePostgres(db).Highlights(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"40% faster"}, items[0].Metrics)
	assert.NotNil(t, items[1].Metrics)
	assert.Empty(t, items[1].Metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}
