package comparisons

import "errors"

var (
	ErrNotFound            = errors.New("comparison not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoComparableFilings = errors.New("fewer than two filings available for comparison")
	ErrNoExtractableRisks  = errors.New("could not extract risk factors")
	ErrMismatchedCompanies = errors.New("filings belong to different companies")
)
