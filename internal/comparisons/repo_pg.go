package comparisons

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/riskdiff"
)

// PGRepo implements Repo using Postgres. Reports are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new comparison.
func (r *PGRepo) Create(ctx context.Context, cmp Comparison) error {
	const query = `
INSERT INTO comparisons (id, company, current_filing_id, prior_filing_id, current_year, prior_year, overall_severity, report, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	report, err := json.Marshal(cmp.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		cmp.ID,
		cmp.Company,
		cmp.CurrentFilingID,
		cmp.PriorFilingID,
		cmp.CurrentYear,
		cmp.PriorYear,
		string(cmp.OverallSeverity),
		report,
		cmp.CreatedAt,
	)
	return err
}

// GetByID fetches a comparison, unmarshalling the stored report.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Comparison, error) {
	const query = `
SELECT id, company, current_filing_id, prior_filing_id, current_year, prior_year, overall_severity, report, created_at
FROM comparisons
WHERE id = $1
LIMIT 1`

	var cmp Comparison
	var severity string
	var report []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&cmp.ID,
		&cmp.Company,
		&cmp.CurrentFilingID,
		&cmp.PriorFilingID,
		&cmp.CurrentYear,
		&cmp.PriorYear,
		&severity,
		&report,
		&cmp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Comparison{}, ErrNotFound
		}
		return Comparison{}, err
	}
	if err := json.Unmarshal(report, &cmp.Report); err != nil {
		return Comparison{}, fmt.Errorf("unmarshal report: %w", err)
	}
	cmp.OverallSeverity = cmp.Report.OverallSeverity
	if cmp.OverallSeverity == "" {
		cmp.OverallSeverity = riskdiff.Severity(severity)
	}
	return cmp, nil
}

// ListByCompany returns comparison summaries, newest first.
func (r *PGRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, company, current_year, prior_year, overall_severity, created_at
FROM comparisons
WHERE lower(company) = lower($1)
ORDER BY created_at DESC, id
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, company, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		var severity string
		if err := rows.Scan(&s.ID, &s.Company, &s.CurrentYear, &s.PriorYear, &severity, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.OverallSeverity = riskdiff.Severity(severity)
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
