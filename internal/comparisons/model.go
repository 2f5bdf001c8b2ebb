package comparisons

import (
	"time"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/riskdiff"
)

// Comparison is a persisted risk-factor comparison between two filings of the
// same company, together with its full analysis report.
type Comparison struct {
	ID              string            `json:"comparisonId"`
	Company         string            `json:"company"`
	CurrentFilingID string            `json:"currentFilingId"`
	PriorFilingID   string            `json:"priorFilingId"`
	CurrentYear     int               `json:"currentYear"`
	PriorYear       int               `json:"priorYear"`
	OverallSeverity riskdiff.Severity `json:"overallSeverity"`
	Report          riskdiff.Report   `json:"report"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Summary is the listing projection of a comparison, without the report body.
type Summary struct {
	ID              string            `json:"comparisonId"`
	Company         string            `json:"company"`
	CurrentYear     int               `json:"currentYear"`
	PriorYear       int               `json:"priorYear"`
	OverallSeverity riskdiff.Severity `json:"overallSeverity"`
	CreatedAt       time.Time         `json:"createdAt"`
}
