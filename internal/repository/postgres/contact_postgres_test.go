package postgres

import (
	"context"
	"testing"
	"time"

	"folio/internal/model"
	"folio/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	in := &model.ContactSubmission{
		Name:    "Grace",
		Email:   "grace@example.com",
		Subject: "Hello",
		Message: "Let's talk",
	}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO contact_submissions").
		WithArgs(in.Name, in.Email, in.Company, in.Subject, in.Message).
		WillReturnRows(sqlmock.NewRows([]string{"id", "submitted_at", "is_read"}).AddRow(42, now, false))

	out, err := NewContactPostgres(db).Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, now, out.SubmittedAt)
	assert.Equal(t, "Grace", out.Name)
	assert.Zero(t, in.ID, "input must not be mutated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contact_submissions").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT (.+) FROM contact_submissions ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "company", "subject", "message", "submitted_at", "is_read"}).
			AddRow(1, "Grace", "grace@example.com", "", "Hello", "Hi", time.Now(), false))

	res, err := NewContactPostgres(db).List(context.Background(), repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
