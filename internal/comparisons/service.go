package comparisons

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/filings"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/riskdiff"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/shared/telemetry"
)

// Service runs the risk-factor diff pipeline over stored filings and
// persists the resulting report.
type Service struct {
	Repo     Repo
	Filings  filings.Repo
	Tunables riskdiff.Tunables
}

// NewService constructs a Service with default pipeline tunables.
func NewService(repo Repo, filingsRepo filings.Repo) *Service {
	return &Service{
		Repo:     repo,
		Filings:  filingsRepo,
		Tunables: riskdiff.DefaultTunables(),
	}
}

// ComparePair compares two filings by ID. The filing with the later fiscal
// year is treated as current regardless of argument order.
func (s *Service) ComparePair(ctx context.Context, currentID, priorID string) (Comparison, error) {
	if strings.TrimSpace(currentID) == "" || strings.TrimSpace(priorID) == "" || currentID == priorID {
		return Comparison{}, ErrInvalidInput
	}

	current, err := s.Filings.GetByID(ctx, currentID)
	if err != nil {
		return Comparison{}, err
	}
	prior, err := s.Filings.GetByID(ctx, priorID)
	if err != nil {
		return Comparison{}, err
	}
	if !strings.EqualFold(current.Company, prior.Company) {
		return Comparison{}, ErrMismatchedCompanies
	}
	if current.FiscalYear < prior.FiscalYear {
		current, prior = prior, current
	}
	return s.run(ctx, current, prior)
}

// CompareLatest compares the two most recent filings for a company.
func (s *Service) CompareLatest(ctx context.Context, company string) (Comparison, error) {
	if strings.TrimSpace(company) == "" {
		return Comparison{}, ErrInvalidInput
	}
	latest, err := s.Filings.LatestTwoByCompany(ctx, company)
	if err != nil {
		return Comparison{}, err
	}
	if len(latest) < 2 {
		return Comparison{}, ErrNoComparableFilings
	}
	return s.run(ctx, latest[0], latest[1])
}

func (s *Service) run(ctx context.Context, current, prior filings.Filing) (Comparison, error) {
	started := time.Now()
	report := riskdiff.Compare(current.Content, prior.Content, current.FiscalYear, prior.FiscalYear, s.Tunables)
	if report.Totals.Current == 0 && report.Totals.Prior == 0 {
		return Comparison{}, ErrNoExtractableRisks
	}

	cmp := Comparison{
		ID:              uuid.NewString(),
		Company:         current.Company,
		CurrentFilingID: current.ID,
		PriorFilingID:   prior.ID,
		CurrentYear:     current.FiscalYear,
		PriorYear:       prior.FiscalYear,
		OverallSeverity: report.OverallSeverity,
		Report:          report,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, cmp); err != nil {
		return Comparison{}, err
	}

	telemetry.Info("comparison.complete", map[string]any{
		"comparison_id": cmp.ID,
		"company":       cmp.Company,
		"current_year":  cmp.CurrentYear,
		"prior_year":    cmp.PriorYear,
		"severity":      string(cmp.OverallSeverity),
		"added":         report.Totals.Added,
		"removed":       report.Totals.Removed,
		"modified":      report.Totals.Modified,
		"duration_ms":   float64(time.Since(started).Microseconds()) / 1000.0,
	})
	return cmp, nil
}

// Get returns a stored comparison by ID.
func (s *Service) Get(ctx context.Context, id string) (Comparison, error) {
	if strings.TrimSpace(id) == "" {
		return Comparison{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns comparison summaries for a company, newest first.
func (s *Service) List(ctx context.Context, company string, limit int) ([]Summary, error) {
	if strings.TrimSpace(company) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByCompany(ctx, company, limit)
}
