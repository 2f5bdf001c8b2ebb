package filings

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Filing // id -> filing
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Filing)}
}

// Create stores a filing, rejecting duplicates on (company, fiscalYear).
func (r *MemoryRepo) Create(ctx context.Context, filing Filing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if strings.EqualFold(existing.Company, filing.Company) && existing.FiscalYear == filing.FiscalYear {
			return ErrDuplicateFiling
		}
	}
	r.data[filing.ID] = filing
	return nil
}

// GetByID returns a filing by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Filing, error) {
	if err := ctx.Err(); err != nil {
		return Filing{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	filing, ok := r.data[id]
	if !ok {
		return Filing{}, ErrNotFound
	}
	return filing, nil
}

// ListByCompany returns filings for a company, newest fiscal year first.
func (r *MemoryRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Filing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Filing, 0, 8)
	for _, filing := range r.data {
		if strings.EqualFold(filing.Company, company) {
			out = append(out, filing)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FiscalYear > out[j].FiscalYear
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// LatestTwoByCompany returns the two most recent filings, newest first.
func (r *MemoryRepo) LatestTwoByCompany(ctx context.Context, company string) ([]Filing, error) {
	return r.ListByCompany(ctx, company, 2)
}

var _ Repo = (*MemoryRepo)(nil)
