package filings

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new filing.
func (r *PGRepo) Create(ctx context.Context, filing Filing) error {
	const query = `
INSERT INTO filings (id, company, fiscal_year, source, file_name, content, char_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	source := filing.Source
	if source == "" {
		source = "upload"
	}
	var fileName sql.NullString
	if filing.FileName != "" {
		fileName = sql.NullString{String: filing.FileName, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		filing.ID,
		filing.Company,
		filing.FiscalYear,
		source,
		fileName,
		filing.Content,
		filing.CharCount,
		filing.CreatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicateFiling
	}
	return err
}

const filingColumns = `id, company, fiscal_year, source, file_name, content, char_count, created_at`

// GetByID fetches a filing by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Filing, error) {
	const query = `
SELECT ` + filingColumns + `
FROM filings
WHERE id = $1
LIMIT 1`

	filing, err := scanFiling(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Filing{}, ErrNotFound
		}
		return Filing{}, err
	}
	return filing, nil
}

// ListByCompany lists filings for a company, newest fiscal year first.
func (r *PGRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Filing, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT ` + filingColumns + `
FROM filings
WHERE lower(company) = lower($1)
ORDER BY fiscal_year DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, company, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Filing
	for rows.Next() {
		filing, err := scanFiling(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, filing)
	}
	return out, rows.Err()
}

// LatestTwoByCompany returns the two most recent filings, newest first.
func (r *PGRepo) LatestTwoByCompany(ctx context.Context, company string) ([]Filing, error) {
	return r.ListByCompany(ctx, company, 2)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFiling(row rowScanner) (Filing, error) {
	var filing Filing
	var fileName sql.NullString
	err := row.Scan(
		&filing.ID,
		&filing.Company,
		&filing.FiscalYear,
		&filing.Source,
		&fileName,
		&filing.Content,
		&filing.CharCount,
		&filing.CreatedAt,
	)
	if err != nil {
		return Filing{}, err
	}
	if fileName.Valid {
		filing.FileName = fileName.String
	}
	return filing, nil
}

var _ Repo = (*PGRepo)(nil)
