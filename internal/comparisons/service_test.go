package comparisons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/filings"
)

const regulatorySection = "Risks Related to Government Regulation\n" +
	"The company's product candidates are subject to extensive regulation by the FDA, and failure to obtain " +
	"regulatory approval in a timely manner, or at all, would materially harm the business and prospects.\n\n"

const competitionSection = "Risks Related to Competition\n" +
	"The markets for the company's products are highly competitive and characterized by rapid technological " +
	"change, and competitors with greater resources may develop superior products or obtain approval sooner.\n\n"

const cyberSection = "Risks Related to Cybersecurity\n" +
	"A breach of information technology systems could result in the loss of trade secrets or patient data, " +
	"disrupt operations, and expose the company to liability and reputational damage that harms the business.\n\n"

const litigationSection = "Risks Related to Litigation\n" +
	"The company may become subject to product liability lawsuits or securities class action litigation, and " +
	"any adverse judgment or settlement could require payments that exceed available insurance coverage.\n\n"

func priorFilingText() string {
	return regulatorySection + competitionSection + cyberSection
}

func currentFilingText() string {
	return regulatorySection + competitionSection + cyberSection + litigationSection
}

func seedFiling(t *testing.T, repo filings.Repo, id, company string, year int, content string) {
	t.Helper()
	err := repo.Create(context.Background(), filings.Filing{
		ID:         id,
		Company:    company,
		FiscalYear: year,
		Source:     "upload",
		Content:    content,
		CharCount:  len(content),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed filing %s: %v", id, err)
	}
}

func setupService(t *testing.T) (*Service, filings.Repo) {
	t.Helper()
	filingsRepo := filings.NewMemoryRepo()
	return NewService(NewMemoryRepo(), filingsRepo), filingsRepo
}

func TestCompareLatest(t *testing.T) {
	svc, filingsRepo := setupService(t)
	seedFiling(t, filingsRepo, "f-2024", "Acme", 2024, priorFilingText())
	seedFiling(t, filingsRepo, "f-2025", "Acme", 2025, currentFilingText())

	cmp, err := svc.CompareLatest(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("CompareLatest: %v", err)
	}
	if cmp.CurrentYear != 2025 || cmp.PriorYear != 2024 {
		t.Fatalf("expected years 2025/2024, got %d/%d", cmp.CurrentYear, cmp.PriorYear)
	}
	if cmp.CurrentFilingID != "f-2025" || cmp.PriorFilingID != "f-2024" {
		t.Fatalf("unexpected filing ids: %s/%s", cmp.CurrentFilingID, cmp.PriorFilingID)
	}
	if cmp.Report.Totals.Current == 0 || cmp.Report.Totals.Prior == 0 {
		t.Fatalf("expected records on both sides, got totals %+v", cmp.Report.Totals)
	}
	if cmp.Report.Totals.Added == 0 {
		t.Fatalf("expected the new litigation section to register as added")
	}
	if cmp.OverallSeverity != cmp.Report.OverallSeverity {
		t.Fatalf("severity mismatch: %s vs %s", cmp.OverallSeverity, cmp.Report.OverallSeverity)
	}

	stored, err := svc.Get(context.Background(), cmp.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.ID != cmp.ID {
		t.Fatalf("expected stored comparison %s, got %s", cmp.ID, stored.ID)
	}
}

func TestCompareLatestRequiresTwoFilings(t *testing.T) {
	svc, filingsRepo := setupService(t)
	seedFiling(t, filingsRepo, "f-2025", "Acme", 2025, currentFilingText())

	_, err := svc.CompareLatest(context.Background(), "Acme")
	if !errors.Is(err, ErrNoComparableFilings) {
		t.Fatalf("expected ErrNoComparableFilings, got %v", err)
	}
}

func TestComparePairOrdersByFiscalYear(t *testing.T) {
	svc, filingsRepo := setupService(t)
	seedFiling(t, filingsRepo, "f-2024", "Acme", 2024, priorFilingText())
	seedFiling(t, filingsRepo, "f-2025", "Acme", 2025, currentFilingText())

	// Arguments reversed on purpose: the later fiscal year must win.
	cmp, err := svc.ComparePair(context.Background(), "f-2024", "f-2025")
	if err != nil {
		t.Fatalf("ComparePair: %v", err)
	}
	if cmp.CurrentYear != 2025 || cmp.PriorYear != 2024 {
		t.Fatalf("expected years 2025/2024, got %d/%d", cmp.CurrentYear, cmp.PriorYear)
	}
}

func TestComparePairRejectsMismatchedCompanies(t *testing.T) {
	svc, filingsRepo := setupService(t)
	seedFiling(t, filingsRepo, "f-a", "Acme", 2025, currentFilingText())
	seedFiling(t, filingsRepo, "f-b", "Globex", 2024, priorFilingText())

	_, err := svc.ComparePair(context.Background(), "f-a", "f-b")
	if !errors.Is(err, ErrMismatchedCompanies) {
		t.Fatalf("expected ErrMismatchedCompanies, got %v", err)
	}
}

func TestComparePairValidation(t *testing.T) {
	svc, _ := setupService(t)

	cases := []struct {
		name               string
		currentID, priorID string
	}{
		{"empty current", "", "f-1"},
		{"empty prior", "f-1", ""},
		{"same filing", "f-1", "f-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ComparePair(context.Background(), tc.currentID, tc.priorID)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestComparePairMissingFiling(t *testing.T) {
	svc, filingsRepo := setupService(t)
	seedFiling(t, filingsRepo, "f-2025", "Acme", 2025, currentFilingText())

	_, err := svc.ComparePair(context.Background(), "f-2025", "f-missing")
	if !errors.Is(err, filings.ErrNotFound) {
		t.Fatalf("expected filings.ErrNotFound, got %v", err)
	}
}

func TestCompareNoExtractableRisks(t *testing.T) {
	svc, filingsRepo := setupService(t)
	// Lowercase running prose defeats both heading detection and the
	// paragraph fallback, so neither side produces any records.
	prose := "the quarter closed without notable developments and management reiterated prior guidance in full."
	seedFiling(t, filingsRepo, "f-2024", "Acme", 2024, prose)
	seedFiling(t, filingsRepo, "f-2025", "Acme", 2025, prose)

	_, err := svc.CompareLatest(context.Background(), "Acme")
	if !errors.Is(err, ErrNoExtractableRisks) {
		t.Fatalf("expected ErrNoExtractableRisks, got %v", err)
	}
}

func TestListComparisons(t *testing.T) {
	svc, filingsRepo := setupService(t)
	seedFiling(t, filingsRepo, "f-2024", "Acme", 2024, priorFilingText())
	seedFiling(t, filingsRepo, "f-2025", "Acme", 2025, currentFilingText())

	cmp, err := svc.CompareLatest(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("CompareLatest: %v", err)
	}

	out, err := svc.List(context.Background(), "acme", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].ID != cmp.ID {
		t.Fatalf("unexpected summaries: %+v", out)
	}
	if out[0].OverallSeverity != cmp.OverallSeverity {
		t.Fatalf("expected severity %s, got %s", cmp.OverallSeverity, out[0].OverallSeverity)
	}
}
