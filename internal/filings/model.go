package filings

import "time"

// Filing is one stored risk-factor section of an annual filing, keyed by
// company and fiscal year.
type Filing struct {
	ID         string    `json:"id"`
	Company    string    `json:"company"`
	FiscalYear int       `json:"fiscalYear"`
	Source     string    `json:"source"`
	FileName   string    `json:"fileName,omitempty"`
	Content    string    `json:"-"`
	CharCount  int       `json:"charCount"`
	CreatedAt  time.Time `json:"createdAt"`
}
