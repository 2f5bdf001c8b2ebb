package riskdiff

// Tunables collects the heuristic constants that shape matching, diffing and
// scoring. The defaults were tuned against labeled filing pairs; callers may
// override them, but reports produced under different Tunables are not
// directly comparable.
type Tunables struct {
	// MatchThreshold is the minimum combined similarity for the fuzzy pass
	// to accept a cross-period match.
	MatchThreshold float64
	// TitleWeight and ContentWeight combine title and body similarity in the
	// fuzzy pass. Titles carry more identity than bodies in this domain.
	TitleWeight   float64
	ContentWeight float64
	// ContentPrefix is how many leading characters of each body participate
	// in fuzzy-match similarity.
	ContentPrefix int
	// UnchangedFloor is the changePercent at or below which a matched pair
	// counts as unchanged.
	UnchangedFloor int
	// DiffWindow is how many leading characters of each body are fed to the
	// token-level diff.
	DiffWindow int
	// CategoryWeights multiply the base score per change type.
	CategoryWeights map[Category]float64
	// HighAlertPhrases each add AlertBoost to the materiality score per
	// occurrence in the current or added text.
	HighAlertPhrases []string
	AlertBoost       float64
}

// DefaultTunables returns a fresh copy of the production defaults.
func DefaultTunables() Tunables {
	return Tunables{
		MatchThreshold: 0.5,
		TitleWeight:    0.6,
		ContentWeight:  0.4,
		ContentPrefix:  500,
		UnchangedFloor: 5,
		DiffWindow:     2000,
		CategoryWeights: map[Category]float64{
			CategoryRegulatory:    3.0,
			CategoryClinical:      3.0,
			CategoryLegal:         2.5,
			CategoryFinancial:     2.0,
			CategoryReimbursement: 2.0,
			CategoryCompetitive:   1.5,
			CategoryIP:            1.5,
			CategoryCybersecurity: 1.5,
			CategoryOperational:   1.0,
			CategoryGeneral:       0.5,
		},
		HighAlertPhrases: []string{
			"going concern",
			"material weakness",
			"warning letter",
			"clinical hold",
			"class action",
			"restatement",
			"covenant violation",
			"bankruptcy",
			"delisting",
			"default on our",
		},
		AlertBoost: 2.0,
	}
}
