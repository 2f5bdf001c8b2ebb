package riskdiff

// ChangeType classifies how a risk factor moved between two reporting periods.
type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
)

// Category is one of the fixed domain categories a risk factor is filed under.
type Category string

const (
	CategoryRegulatory    Category = "regulatory"
	CategoryClinical      Category = "clinical"
	CategoryCompetitive   Category = "competitive"
	CategoryFinancial     Category = "financial"
	CategoryOperational   Category = "operational"
	CategoryIP            Category = "intellectual-property"
	CategoryLegal         Category = "legal"
	CategoryReimbursement Category = "reimbursement"
	CategoryCybersecurity Category = "cybersecurity"
	CategoryGeneral       Category = "general"
)

// Record is one discrete risk factor extracted from a filing section.
// Records are produced once per document and never mutated afterwards.
type Record struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  Category `json:"category"`
	WordCount int      `json:"wordCount"`
}

// Change describes what happened to a single risk factor between the prior
// and current period, with a bounded materiality score.
type Change struct {
	Title            string     `json:"title"`
	ChangeType       ChangeType `json:"changeType"`
	Category         Category   `json:"category"`
	CurrentContent   string     `json:"currentContent,omitempty"`
	PriorContent     string     `json:"priorContent,omitempty"`
	DiffMarkup       string     `json:"diffMarkup,omitempty"`
	ChangePercent    int        `json:"changePercent,omitempty"`
	AddedSnippets    []string   `json:"addedSnippets,omitempty"`
	RemovedSnippets  []string   `json:"removedSnippets,omitempty"`
	Severity         int        `json:"severity"`
	MaterialityScore float64    `json:"materialityScore"`
	Summary          string     `json:"summary"`
}

// Totals counts records and change classifications across the whole pair.
type Totals struct {
	Current  int `json:"current"`
	Prior    int `json:"prior"`
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// CategoryCounts tallies presence and change counts for one category.
type CategoryCounts struct {
	Current  int `json:"current"`
	Prior    int `json:"prior"`
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// Severity is the overall verdict for a comparison.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
	SeverityLow      Severity = "low"
	SeverityMinimal  Severity = "minimal"
)

// Report is the aggregated, JSON-serializable result of comparing two
// reporting periods. Changes are ordered by descending materiality.
type Report struct {
	CurrentYear       int                         `json:"currentYear"`
	PriorYear         int                         `json:"priorYear"`
	Totals            Totals                      `json:"totals"`
	CategoryBreakdown map[Category]CategoryCounts `json:"categoryBreakdown"`
	Changes           []Change                    `json:"changes"`
	OverallSeverity   Severity                    `json:"overallSeverity"`
	KeyInsights       []string                    `json:"keyInsights"`
}
