package comparisons

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Comparison
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Comparison)}
}

// Create stores a comparison.
func (r *MemoryRepo) Create(ctx context.Context, cmp Comparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[cmp.ID] = cmp
	return nil
}

// GetByID returns a comparison by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Comparison, error) {
	if err := ctx.Err(); err != nil {
		return Comparison{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmp, ok := r.data[id]
	if !ok {
		return Comparison{}, ErrNotFound
	}
	return cmp, nil
}

// ListByCompany returns comparison summaries, newest first.
func (r *MemoryRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, 8)
	for _, cmp := range r.data {
		if strings.EqualFold(cmp.Company, company) {
			out = append(out, Summary{
				ID:              cmp.ID,
				Company:         cmp.Company,
				CurrentYear:     cmp.CurrentYear,
				PriorYear:       cmp.PriorYear,
				OverallSeverity: cmp.OverallSeverity,
				CreatedAt:       cmp.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
