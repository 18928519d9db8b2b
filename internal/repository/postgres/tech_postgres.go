package postgres

import (
	"context"
	"database/sql"

	"folio/internal/model"
	"folio/internal/repository"
)

// TechPostgres is a PostgreSQL implementation of repository.TechRepository.
type TechPostgres struct {
	db *sql.DB
}

// NewTechPostgres creates a new TechPostgres repository.
func NewTechPostgres(db *sql.DB) *TechPostgres {
	return &TechPostgres{db: db}
}

var _ repository.TechRepository = (*TechPostgres)(nil)

const techQuery = `
		SELECT c.name, c.sort_order, t.id, t.name, t.proficiency, t.description, t.icon_url, t.color
		FROM technologies t
		JOIN tech_categories c ON c.id = t.category_id
	`

// List returns every technology with its category name.
func (r *TechPostgres) List(ctx context.Context) ([]model.Technology, error) {
	var out []model.Technology
	err := r.each(ctx, techQuery+`ORDER BY c.name, t.name`, func(_ int, t model.Technology) {
		out = append(out, t)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]model.Technology, 0)
	}
	return out, nil
}

// Grouped folds the ordered rows into categories. Categories without technologies never appear.
func (r *TechPostgres) Grouped(ctx context.Context) ([]model.TechCategory, error) {
	out := make([]model.TechCategory, 0)
	err := r.each(ctx, techQuery+`ORDER BY c.sort_order, c.name, t.name`, func(order int, t model.Technology) {
		if n := len(out); n == 0 || out[n-1].Category != t.Category {
			out = append(out, model.TechCategory{Category: t.Category, Order: order})
		}
		last := &out[len(out)-1]
		last.Technologies = append(last.Technologies, t)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of technologies.
func (r *TechPostgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM technologies`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *TechPostgres) each(ctx context.Context, q string, fn func(order int, t model.Technology)) error {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t     model.Technology
			order int
		)
		if err := rows.Scan(
			&t.Category,
			&order,
			&t.ID,
			&t.Name,
			&t.Proficiency,
			&t.Description,
			&t.IconURL,
			&t.Color,
		); err != nil {
			return err
		}
		fn(order, t)
	}
	return rows.Err()
}
