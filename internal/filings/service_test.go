package filings

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func longText(n int) string {
	return strings.Repeat("Our business faces risks from competition and regulation. ", n/58+1)
}

func TestIngestTextStoresFiling(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	filing, err := svc.IngestText(context.Background(), "Acme Therapeutics", 2025, longText(2000))
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if filing.ID == "" {
		t.Fatalf("expected generated id")
	}
	if filing.Source != "upload" {
		t.Fatalf("expected source upload, got %q", filing.Source)
	}
	if filing.CharCount < MinContentChars {
		t.Fatalf("expected charCount >= %d, got %d", MinContentChars, filing.CharCount)
	}

	stored, err := svc.Get(context.Background(), filing.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Company != "Acme Therapeutics" || stored.FiscalYear != 2025 {
		t.Fatalf("unexpected stored filing: %+v", stored)
	}
}

func TestIngestTextValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	cases := []struct {
		name    string
		company string
		year    int
		content string
		want    error
	}{
		{"missing company", "  ", 2025, longText(2000), ErrInvalidInput},
		{"implausible year", "Acme", 123, longText(2000), ErrInvalidInput},
		{"short content", "Acme", 2025, "too short", ErrInsufficientContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.IngestText(context.Background(), tc.company, tc.year, tc.content)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestIngestTextRejectsDuplicateYear(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.IngestText(context.Background(), "Acme", 2025, longText(2000)); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	_, err := svc.IngestText(context.Background(), "acme", 2025, longText(2000))
	if !errors.Is(err, ErrDuplicateFiling) {
		t.Fatalf("expected ErrDuplicateFiling, got %v", err)
	}
}

func TestListByCompanyNewestFirst(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	for _, year := range []int{2023, 2025, 2024} {
		if _, err := svc.IngestText(context.Background(), "Acme", year, longText(2000)); err != nil {
			t.Fatalf("ingest %d: %v", year, err)
		}
	}

	out, err := svc.List(context.Background(), "ACME", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 filings, got %d", len(out))
	}
	for i, want := range []int{2025, 2024, 2023} {
		if out[i].FiscalYear != want {
			t.Fatalf("position %d: expected year %d, got %d", i, want, out[i].FiscalYear)
		}
	}

	latest, err := svc.Repo.LatestTwoByCompany(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("LatestTwoByCompany: %v", err)
	}
	if len(latest) != 2 || latest[0].FiscalYear != 2025 || latest[1].FiscalYear != 2024 {
		t.Fatalf("unexpected latest two: %+v", latest)
	}
}
