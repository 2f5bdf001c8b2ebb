package riskdiff

import (
	"math"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	maxSnippets      = 5
	minSnippetLength = 20
)

var sentenceSplit = regexp.MustCompile(`[.!?;]\s+`)

// ContentDiff is the displayable result of comparing one matched pair.
type ContentDiff struct {
	Unchanged       bool
	ChangePercent   int
	Markup          string
	AddedSnippets   []string
	RemovedSnippets []string
	Severity        int
}

// DiffContents decides whether a matched pair counts as modified and, when it
// does, produces inline token-level markup plus short excerpt lists. Pairs at
// or below the unchanged floor report Unchanged with no markup.
func DiffContents(current, prior string, t Tunables) ContentDiff {
	similarity := jaccard(current, prior)
	changePercent := int(math.Round((1 - similarity) * 100))
	if changePercent <= t.UnchangedFloor {
		return ContentDiff{Unchanged: true}
	}

	return ContentDiff{
		ChangePercent:   changePercent,
		Markup:          annotateTokens(prefix(prior, t.DiffWindow), prefix(current, t.DiffWindow)),
		AddedSnippets:   newSentences(current, prior),
		RemovedSnippets: newSentences(prior, current),
		Severity:        severityTier(changePercent),
	}
}

func severityTier(changePercent int) int {
	switch {
	case changePercent > 30:
		return 3
	case changePercent > 15:
		return 2
	default:
		return 1
	}
}

// annotateTokens runs an LCS diff over word tokens and marks insertions with
// [+...+] and deletions with [-...-] inline.
func annotateTokens(prior, current string) string {
	priorTokens := strings.Fields(prior)
	currentTokens := strings.Fields(current)

	matcher := difflib.NewMatcher(priorTokens, currentTokens)
	var b strings.Builder
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			writeSpan(&b, "", strings.Join(priorTokens[op.I1:op.I2], " "), "")
		case 'd':
			writeSpan(&b, "[-", strings.Join(priorTokens[op.I1:op.I2], " "), "-]")
		case 'i':
			writeSpan(&b, "[+", strings.Join(currentTokens[op.J1:op.J2], " "), "+]")
		case 'r':
			writeSpan(&b, "[-", strings.Join(priorTokens[op.I1:op.I2], " "), "-]")
			writeSpan(&b, "[+", strings.Join(currentTokens[op.J1:op.J2], " "), "+]")
		}
	}
	return b.String()
}

func writeSpan(b *strings.Builder, opening, text, closing string) {
	if text == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(opening)
	b.WriteString(text)
	b.WriteString(closing)
}

// newSentences returns up to maxSnippets sentence-level fragments present in
// text but absent from reference, skipping fragments under 20 characters.
func newSentences(text, reference string) []string {
	lowerRef := strings.ToLower(reference)

	var out []string
	for _, fragment := range sentenceSplit.Split(text, -1) {
		trimmed := strings.TrimSpace(fragment)
		if len(trimmed) < minSnippetLength {
			continue
		}
		if strings.Contains(lowerRef, strings.ToLower(trimmed)) {
			continue
		}
		out = append(out, trimmed)
		if len(out) == maxSnippets {
			break
		}
	}
	return out
}
