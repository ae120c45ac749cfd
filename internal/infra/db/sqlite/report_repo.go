package sqlite

import (
	"context"
	"database/sql"

	domain "github.com/Laevateinn0131/callguard/internal/domain/reports"
)

// CaseRepository persists reported cases, one row per number.
type CaseRepository struct {
	db *sql.DB
}

func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Save upserts a case keyed by number. Repeat saves carry the incremented
// count and concatenated description computed by the caller.
func (r *CaseRepository) Save(ctx context.Context, c *domain.Case) error {
	const q = `
INSERT INTO reported_cases
(id, number, description, category, reports, first_reported_at, last_reported_at)
VALUES (?,?,?,?,?,?,?)
ON CONFLICT(number) DO UPDATE SET
 description=excluded.description,
 category=excluded.category,
 reports=excluded.reports,
 last_reported_at=excluded.last_reported_at;
`
	_, err := r.db.ExecContext(ctx, q,
		c.ID, c.Number, c.Description, c.Category, c.Reports,
		c.FirstReportedAt, c.LastReportedAt,
	)
	return err
}

// FindByNumber returns sql.ErrNoRows when no case exists.
func (r *CaseRepository) FindByNumber(ctx context.Context, number string) (*domain.Case, error) {
	const q = `
SELECT id, number, description, category, reports, first_reported_at, last_reported_at
FROM reported_cases
WHERE number=? LIMIT 1;
`
	var c domain.Case
	if err := r.db.QueryRowContext(ctx, q, number).Scan(
		&c.ID, &c.Number, &c.Description, &c.Category, &c.Reports,
		&c.FirstReportedAt, &c.LastReportedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CaseRepository) Recent(ctx context.Context, limit int) ([]*domain.Case, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, number, description, category, reports, first_reported_at, last_reported_at
FROM reported_cases
ORDER BY last_reported_at DESC, number LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Case
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(
			&c.ID, &c.Number, &c.Description, &c.Category, &c.Reports,
			&c.FirstReportedAt, &c.LastReportedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
