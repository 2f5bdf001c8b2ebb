package filings

import "context"

// Repo defines persistence operations for filings.
type Repo interface {
	Create(ctx context.Context, filing Filing) error
	GetByID(ctx context.Context, id string) (Filing, error)
	ListByCompany(ctx context.Context, company string, limit int) ([]Filing, error)
	// LatestTwoByCompany returns the two most recent fiscal years for a
	// company, newest first. Fewer than two filings yields a short slice.
	LatestTwoByCompany(ctx context.Context, company string) ([]Filing, error)
}
