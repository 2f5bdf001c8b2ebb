package filings

import "errors"

var (
	ErrNotFound            = errors.New("filing not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientContent = errors.New("insufficient content to analyze")
	ErrDuplicateFiling     = errors.New("filing already exists for company and fiscal year")
)
