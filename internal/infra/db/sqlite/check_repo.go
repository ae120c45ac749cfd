package sqlite

import (
	"context"
	"database/sql"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
	domain "github.com/Laevateinn0131/callguard/internal/domain/checks"
)

// CheckRepository persists the check history.
type CheckRepository struct {
	db *sql.DB
}

func NewCheckRepository(db *sql.DB) *CheckRepository {
	return &CheckRepository{db: db}
}

func (r *CheckRepository) Save(ctx context.Context, c *domain.Check) error {
	const q = `
INSERT INTO check_history
(id, input, normalized, risk_level, caller_json,
 warnings_json, details_json, recommendations_json, insight_json, checked_at)
VALUES (?,?,?,?,?,?,?,?,?,?);
`
	caller, err := encodeJSON(c.Caller)
	if err != nil {
		return err
	}
	warnings, err := encodeJSON(emptyIfNil(c.Warnings))
	if err != nil {
		return err
	}
	details, err := encodeJSON(emptyIfNil(c.Details))
	if err != nil {
		return err
	}
	recs, err := encodeJSON(emptyIfNil(c.Recommendations))
	if err != nil {
		return err
	}
	var insight sql.NullString
	if c.Insight != nil {
		s, err := encodeJSON(c.Insight)
		if err != nil {
			return err
		}
		insight = sql.NullString{String: s, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, q,
		c.ID, c.Input, c.Normalized, c.Risk, caller,
		warnings, details, recs, insight, c.CheckedAt,
	)
	return err
}

func (r *CheckRepository) Get(ctx context.Context, id domain.CheckID) (*domain.Check, error) {
	const q = `
SELECT id, input, normalized, risk_level, caller_json,
       warnings_json, details_json, recommendations_json, insight_json, checked_at
FROM check_history
WHERE id=? LIMIT 1;
`
	return scanCheck(r.db.QueryRowContext(ctx, q, id))
}

func (r *CheckRepository) Latest(ctx context.Context, limit int) ([]*domain.Check, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, input, normalized, risk_level, caller_json,
       warnings_json, details_json, recommendations_json, insight_json, checked_at
FROM check_history
ORDER BY checked_at DESC, id LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Check
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CheckRepository) Summary(ctx context.Context) (domain.Summary, error) {
	const q = `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN risk_level='danger'    THEN 1 ELSE 0 END),0),
       COALESCE(SUM(CASE WHEN risk_level='caution'   THEN 1 ELSE 0 END),0),
       COALESCE(SUM(CASE WHEN risk_level='safe'      THEN 1 ELSE 0 END),0),
       COALESCE(SUM(CASE WHEN risk_level='emergency' THEN 1 ELSE 0 END),0)
FROM check_history;
`
	var s domain.Summary
	err := r.db.QueryRowContext(ctx, q).Scan(&s.Total, &s.Danger, &s.Caution, &s.Safe, &s.Emergency)
	return s, err
}

func (r *CheckRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM check_history;`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheck(row rowScanner) (*domain.Check, error) {
	var c domain.Check
	var caller, warnings, details, recs string
	var insight sql.NullString
	if err := row.Scan(
		&c.ID, &c.Input, &c.Normalized, &c.Risk, &caller,
		&warnings, &details, &recs, &insight, &c.CheckedAt,
	); err != nil {
		return nil, err
	}
	if err := decodeJSON(caller, &c.Caller); err != nil {
		return nil, err
	}
	if err := decodeJSON(warnings, &c.Warnings); err != nil {
		return nil, err
	}
	if err := decodeJSON(details, &c.Details); err != nil {
		return nil, err
	}
	if err := decodeJSON(recs, &c.Recommendations); err != nil {
		return nil, err
	}
	if insight.Valid {
		c.Insight = &ai.NumberInsight{}
		if err := decodeJSON(insight.String, c.Insight); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
