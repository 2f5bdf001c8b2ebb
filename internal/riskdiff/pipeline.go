// Package riskdiff computes a structured, explainable diff between two
// periods of a filing's risk-factor section: which disclosed risks are new,
// removed, or materially reworded, with a bounded materiality score per
// change. Every stage is a pure function over its inputs; identical inputs
// always produce byte-identical reports, so callers may run any number of
// comparisons concurrently with no coordination.
package riskdiff

// Compare segments and categorizes both text blobs, then runs the full
// matching, diffing, scoring and aggregation pipeline. It is total: empty or
// malformed input degrades to an empty report rather than an error. Callers
// are expected to reject documents under ~1,000 characters before invoking
// it, since such inputs reflect a document-selection problem rather than a
// segmentation one.
func Compare(currentText, priorText string, currentYear, priorYear int, t Tunables) Report {
	current := Segment(currentText)
	prior := Segment(priorText)
	return CompareRecords(current, prior, currentYear, priorYear, t)
}

// CompareRecords runs the pipeline over pre-segmented records, assigning
// categories to any record that lacks one. This entry point exists for
// callers that segment ahead of time or replay stored records.
func CompareRecords(current, prior []Record, currentYear, priorYear int, t Tunables) Report {
	current = categorized(current)
	prior = categorized(prior)

	m := MatchRecords(current, prior, t)

	changes := make([]Change, 0, len(current)+len(m.RemovedPrior))
	for i, rec := range current {
		if j, ok := m.Pairs[i]; ok {
			changes = append(changes, diffPair(rec, prior[j], t))
			continue
		}
		changes = append(changes, Change{
			Title:          rec.Title,
			ChangeType:     ChangeAdded,
			Category:       rec.Category,
			CurrentContent: rec.Content,
			Severity:       3,
		})
	}
	for _, j := range m.RemovedPrior {
		rec := prior[j]
		changes = append(changes, Change{
			Title:        rec.Title,
			ChangeType:   ChangeRemoved,
			Category:     rec.Category,
			PriorContent: rec.Content,
			Severity:     2,
		})
	}

	for i := range changes {
		changes[i].MaterialityScore, changes[i].Summary = ScoreChange(changes[i], t)
	}

	return Aggregate(changes, current, prior, currentYear, priorYear)
}

func diffPair(current, prior Record, t Tunables) Change {
	d := DiffContents(current.Content, prior.Content, t)
	if d.Unchanged {
		return Change{
			Title:      current.Title,
			ChangeType: ChangeUnchanged,
			Category:   current.Category,
		}
	}
	return Change{
		Title:           current.Title,
		ChangeType:      ChangeModified,
		Category:        current.Category,
		CurrentContent:  current.Content,
		PriorContent:    prior.Content,
		DiffMarkup:      d.Markup,
		ChangePercent:   d.ChangePercent,
		AddedSnippets:   d.AddedSnippets,
		RemovedSnippets: d.RemovedSnippets,
		Severity:        d.Severity,
	}
}

func categorized(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Category == "" {
			out[i].Category = Categorize(out[i].Title + " " + out[i].Content)
		}
	}
	return out
}
