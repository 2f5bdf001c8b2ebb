package riskdiff

import "strings"

const matchKeyLength = 50

// Matching aligns current-period records to prior-period records. Pairs is an
// injective partial mapping from current indices to prior indices: no prior
// index appears twice and every current index is either in Pairs or in Added.
type Matching struct {
	Pairs        map[int]int
	AddedCurrent []int
	RemovedPrior []int
}

// MatchRecords aligns the two ordered record lists in two passes: an exact
// pass over normalized title keys, then a fuzzy pass combining title and
// body similarity. Current records that clear neither pass are added; prior
// records never claimed are removed.
func MatchRecords(current, prior []Record, t Tunables) Matching {
	m := Matching{Pairs: make(map[int]int, len(current))}
	usedPrior := make([]bool, len(prior))

	priorKeys := make([]string, len(prior))
	for j, rec := range prior {
		priorKeys[j] = matchKey(rec.Title)
	}

	// Exact pass: stable headings are the common case and resolve cheaply.
	for i, rec := range current {
		key := matchKey(rec.Title)
		if key == "" {
			continue
		}
		for j := range prior {
			if usedPrior[j] || priorKeys[j] != key {
				continue
			}
			m.Pairs[i] = j
			usedPrior[j] = true
			break
		}
	}

	// Fuzzy pass: absorb paraphrased titles above the similarity floor.
	for i, rec := range current {
		if _, done := m.Pairs[i]; done {
			continue
		}
		bestIdx := -1
		bestScore := 0.0
		for j, prevRec := range prior {
			if usedPrior[j] {
				continue
			}
			score := t.TitleWeight*jaccard(rec.Title, prevRec.Title) +
				t.ContentWeight*jaccard(prefix(rec.Content, t.ContentPrefix), prefix(prevRec.Content, t.ContentPrefix))
			// Strict > keeps the earliest prior index on ties.
			if score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx >= 0 && bestScore > t.MatchThreshold {
			m.Pairs[i] = bestIdx
			usedPrior[bestIdx] = true
			continue
		}
		m.AddedCurrent = append(m.AddedCurrent, i)
	}

	for j := range prior {
		if !usedPrior[j] {
			m.RemovedPrior = append(m.RemovedPrior, j)
		}
	}
	return m
}

// matchKey normalizes a title into an exact-match key: lowercase,
// alphanumerics only, truncated to 50 characters.
func matchKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= matchKeyLength {
			break
		}
	}
	return b.String()
}
