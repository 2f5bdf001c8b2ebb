package riskdiff

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxMateriality    = 10.0
	summaryTitleWidth = 60
)

var changeTypeBase = map[ChangeType]float64{
	ChangeAdded:     7,
	ChangeRemoved:   5,
	ChangeModified:  3,
	ChangeUnchanged: 0,
}

// ScoreChange maps a change (minus score and summary) to a materiality score
// in [0,10] and a one-line human-readable summary.
func ScoreChange(ch Change, t Tunables) (float64, string) {
	score := changeTypeBase[ch.ChangeType]

	weight, ok := t.CategoryWeights[ch.Category]
	if !ok {
		weight = t.CategoryWeights[CategoryGeneral]
	}
	score *= weight

	if ch.ChangeType == ChangeModified {
		switch {
		case ch.ChangePercent > 50:
			score *= 1.5
		case ch.ChangePercent > 25:
			score *= 1.2
		}
	}

	score += t.AlertBoost * float64(alertHits(ch, t.HighAlertPhrases))

	score = math.Min(math.Max(score, 0), maxMateriality)
	score = math.Round(score*10) / 10

	return score, summarize(ch)
}

// alertHits counts high-alert phrase occurrences in the current and added
// text of the change. Removed risks carry no current text and get no boost.
func alertHits(ch Change, phrases []string) int {
	text := ch.CurrentContent
	if text == "" {
		text = strings.Join(ch.AddedSnippets, " ")
	}
	haystack := strings.ToLower(text)
	hits := 0
	for _, phrase := range phrases {
		hits += strings.Count(haystack, phrase)
	}
	return hits
}

func summarize(ch Change) string {
	title := truncateTitle(ch.Title, summaryTitleWidth)
	switch ch.ChangeType {
	case ChangeAdded:
		return fmt.Sprintf("New %s risk disclosed: %s", ch.Category, title)
	case ChangeRemoved:
		return fmt.Sprintf("%s risk no longer disclosed: %s", capitalize(string(ch.Category)), title)
	case ChangeModified:
		return fmt.Sprintf("%s risk reworded (%d%% changed): %s", capitalize(string(ch.Category)), ch.ChangePercent, title)
	default:
		return fmt.Sprintf("No material change to %s risk: %s", ch.Category, title)
	}
}

func truncateTitle(title string, width int) string {
	if len(title) <= width {
		return title
	}
	return strings.TrimSpace(title[:width]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
