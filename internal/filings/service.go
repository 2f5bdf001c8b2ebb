package filings

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/extract"
)

// MinContentChars is the floor below which a filing section is too short to
// segment meaningfully. The analysis pipeline itself is total; this
// precondition is enforced here at ingestion, where document selection
// happens, so short fragments never reach comparison at all.
const MinContentChars = 1000

// Service contains business logic for filings.
type Service struct {
	Repo Repo
}

// Ingest extracts text from an uploaded payload and records the filing.
func (s *Service) Ingest(ctx context.Context, company string, fiscalYear int, fileName, mimeType string, data []byte) (Filing, error) {
	company = strings.TrimSpace(company)
	if company == "" || fiscalYear < 1900 || fiscalYear > 2200 {
		return Filing{}, ErrInvalidInput
	}

	text, err := extract.ExtractTextFromBytes(data, mimeType, fileName)
	if err != nil {
		return Filing{}, err
	}
	return s.ingestText(ctx, company, fiscalYear, fileName, text)
}

// IngestText records a filing from already-extracted plain text.
func (s *Service) IngestText(ctx context.Context, company string, fiscalYear int, text string) (Filing, error) {
	company = strings.TrimSpace(company)
	if company == "" || fiscalYear < 1900 || fiscalYear > 2200 {
		return Filing{}, ErrInvalidInput
	}
	return s.ingestText(ctx, company, fiscalYear, "", text)
}

func (s *Service) ingestText(ctx context.Context, company string, fiscalYear int, fileName, text string) (Filing, error) {
	text = strings.TrimSpace(text)
	if len(text) < MinContentChars {
		return Filing{}, ErrInsufficientContent
	}

	filing := Filing{
		ID:         uuid.NewString(),
		Company:    company,
		FiscalYear: fiscalYear,
		Source:     "upload",
		FileName:   fileName,
		Content:    text,
		CharCount:  len(text),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, filing); err != nil {
		return Filing{}, err
	}
	return filing, nil
}

// Get returns a filing by ID.
func (s *Service) Get(ctx context.Context, id string) (Filing, error) {
	if strings.TrimSpace(id) == "" {
		return Filing{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns filings for a company, newest fiscal year first.
func (s *Service) List(ctx context.Context, company string, limit int) ([]Filing, error) {
	if strings.TrimSpace(company) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByCompany(ctx, company, limit)
}
