package riskdiff

import (
	"fmt"
	"sort"
)

// significantRewordPercent marks a modification worth calling out on its own.
const significantRewordPercent = 25

// Aggregate rolls the full change set and both record lists into one report.
// Changes are re-ordered by descending materiality (ties by title, then by
// change type, so identical inputs always serialize identically).
func Aggregate(changes []Change, current, prior []Record, currentYear, priorYear int) Report {
	report := Report{
		CurrentYear:       currentYear,
		PriorYear:         priorYear,
		CategoryBreakdown: make(map[Category]CategoryCounts),
		Changes:           append([]Change(nil), changes...),
		KeyInsights:       []string{},
	}

	report.Totals.Current = len(current)
	report.Totals.Prior = len(prior)
	for _, rec := range current {
		counts := report.CategoryBreakdown[rec.Category]
		counts.Current++
		report.CategoryBreakdown[rec.Category] = counts
	}
	for _, rec := range prior {
		counts := report.CategoryBreakdown[rec.Category]
		counts.Prior++
		report.CategoryBreakdown[rec.Category] = counts
	}

	maxScore := 0.0
	highScoring := 0
	significant := 0
	for _, ch := range report.Changes {
		counts := report.CategoryBreakdown[ch.Category]
		switch ch.ChangeType {
		case ChangeAdded:
			report.Totals.Added++
			counts.Added++
		case ChangeRemoved:
			report.Totals.Removed++
			counts.Removed++
		case ChangeModified:
			report.Totals.Modified++
			counts.Modified++
			if ch.ChangePercent > significantRewordPercent {
				significant++
			}
		}
		report.CategoryBreakdown[ch.Category] = counts

		if ch.MaterialityScore > maxScore {
			maxScore = ch.MaterialityScore
		}
		if ch.MaterialityScore > 6 {
			highScoring++
		}
	}

	sort.SliceStable(report.Changes, func(i, j int) bool {
		a, b := report.Changes[i], report.Changes[j]
		if a.MaterialityScore != b.MaterialityScore {
			return a.MaterialityScore > b.MaterialityScore
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ChangeType < b.ChangeType
	})

	report.OverallSeverity = overallSeverity(maxScore, highScoring, report.Totals)
	report.KeyInsights = buildInsights(report, significant)
	return report
}

func overallSeverity(maxScore float64, highScoring int, totals Totals) Severity {
	switch {
	case maxScore >= 9 || highScoring >= 3:
		return SeverityCritical
	case maxScore >= 7 || highScoring >= 2:
		return SeverityHigh
	case totals.Added > 5 || maxScore >= 5:
		return SeverityModerate
	case totals.Added > 0 || totals.Modified > 3:
		return SeverityLow
	default:
		return SeverityMinimal
	}
}

func buildInsights(report Report, significant int) []string {
	insights := []string{}
	if n := report.Totals.Added; n > 0 {
		insights = append(insights, fmt.Sprintf("%d new risk factor%s disclosed this period", n, plural(n)))
	}
	if n := report.Totals.Removed; n > 0 {
		insights = append(insights, fmt.Sprintf("%d risk factor%s removed since the prior period", n, plural(n)))
	}
	if significant > 0 {
		insights = append(insights, fmt.Sprintf("%d risk factor%s substantially reworded", significant, plural(significant)))
	}
	for _, cat := range []Category{CategoryRegulatory, CategoryClinical, CategoryFinancial} {
		if report.CategoryBreakdown[cat].Added > 0 {
			insights = append(insights, fmt.Sprintf("New %s risk disclosed", cat))
		}
	}
	return insights
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
