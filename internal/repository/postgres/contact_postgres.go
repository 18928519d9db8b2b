package postgres

import (
	"context"
	"database/sql"

	"folio/internal/model"
	"folio/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a submission and returns the stored record.
func (r *ContactPostgres) Create(ctx context.Context, s *model.ContactSubmission) (*model.ContactSubmission, error) {
	const q = `
		INSERT INTO contact_submissions (name, email, company, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at, is_read
	`
	out := *s
	if err := r.db.QueryRowContext(ctx, q,
		s.Name,
		s.Email,
		s.Company,
		s.Subject,
		s.Message,
	).Scan(&out.ID, &out.SubmittedAt, &out.IsRead); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns submissions using LIMIT/OFFSET pagination and a total count.
func (r *ContactPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactSubmission], error) {
	const qCount = `SELECT COUNT(*) FROM contact_submissions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, email, company, subject, message, submitted_at, is_read
		FROM contact_submissions
		ORDER BY submitted_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactSubmission, 0)
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Company,
			&s.Subject,
			&s.Message,
			&s.SubmittedAt,
			&s.IsRead,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ContactSubmission]{
		Items: items,
		Total: total,
	}, nil
}
