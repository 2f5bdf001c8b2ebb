package comparisons

import "context"

// Repo defines persistence operations for comparisons.
type Repo interface {
	Create(ctx context.Context, cmp Comparison) error
	GetByID(ctx context.Context, id string) (Comparison, error)
	ListByCompany(ctx context.Context, company string, limit int) ([]Summary, error)
}
