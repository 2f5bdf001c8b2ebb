package riskdiff

import (
	"regexp"
	"sort"
	"strings"
)

const (
	minRecordContent = 100
	maxTitleLength   = 200
	// Boundary candidates whose start positions are closer than this are
	// treated as duplicate detections of the same heading.
	boundaryDedupeWindow = 50
)

// Heading detectors applied independently over the whole blob. Go's compiled
// patterns carry no match-position state, so sharing them across documents
// keeps segmentation idempotent.
var headingPatterns = []*regexp.Regexp{
	// A standalone capitalized headline line without a sentence terminator.
	regexp.MustCompile(`(?m)^[A-Z][A-Za-z0-9 ,&'’()/\-]{9,199}$`),
	// A lead sentence in the first person of the issuer.
	regexp.MustCompile(`(?m)^(?:We|Our|If [Ww]e|If [Oo]ur) [^\n]{20,180}[.;]`),
	// Numbered items.
	regexp.MustCompile(`(?m)^\s{0,8}\d{1,2}[.)]\s+\S[^\n]{5,198}`),
	// Bulleted items.
	regexp.MustCompile(`(?m)^\s{0,8}[•*‣-]\s+\S[^\n]{5,198}`),
}

var (
	leadingMarkers = regexp.MustCompile(`^[\s\d.)(•*‣-]+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

type boundary struct {
	start int
	end   int // end of the heading match; body starts here
	title string
}

// Segment splits a cleaned text blob into ordered risk-factor records. It is
// total: malformed or empty input yields an empty list, never a panic. The
// caller is expected to reject documents that are too short to segment
// meaningfully before invoking it.
func Segment(text string) []Record {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	candidates := detectHeadings(text)
	records := buildRecords(text, candidates)
	if len(records) >= 3 {
		return records
	}

	// Dense or atypically formatted text: fall back to paragraph splitting
	// and keep whichever pass extracted more.
	fallback := segmentParagraphs(text)
	if len(fallback) > len(records) {
		return fallback
	}
	return records
}

func detectHeadings(text string) []boundary {
	var found []boundary
	for _, pattern := range headingPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			title := normalizeTitle(text[loc[0]:loc[1]])
			if title == "" {
				continue
			}
			found = append(found, boundary{start: loc[0], end: loc[1], title: title})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].end > found[j].end
	})

	var kept []boundary
	seenTitles := make(map[string]struct{})
	lastStart := -boundaryDedupeWindow - 1
	for _, b := range found {
		key := dedupeKey(b.title)
		if b.start-lastStart <= boundaryDedupeWindow {
			continue
		}
		if _, dup := seenTitles[key]; dup {
			continue
		}
		seenTitles[key] = struct{}{}
		kept = append(kept, b)
		lastStart = b.start
	}
	return kept
}

func buildRecords(text string, bounds []boundary) []Record {
	var records []Record
	for i, b := range bounds {
		bodyEnd := len(text)
		if i+1 < len(bounds) {
			bodyEnd = bounds[i+1].start
		}
		if b.end > bodyEnd {
			continue
		}
		content := strings.TrimSpace(text[b.end:bodyEnd])
		if len(content) < minRecordContent {
			continue
		}
		records = append(records, Record{
			Title:     b.title,
			Content:   content,
			WordCount: len(strings.Fields(content)),
		})
	}
	return records
}

// segmentParagraphs treats short, capitalized, non-sentence-terminated
// paragraphs as headers and everything until the next such paragraph as body.
// This can misfire on short emphatic sentences that are not actually headers;
// it only runs when structured heading detection found too little.
func segmentParagraphs(text string) []Record {
	paragraphs := strings.Split(text, "\n\n")

	var records []Record
	var title string
	var body []string

	flush := func() {
		if title == "" {
			return
		}
		content := strings.TrimSpace(strings.Join(body, "\n\n"))
		if len(content) >= minRecordContent {
			records = append(records, Record{
				Title:     title,
				Content:   content,
				WordCount: len(strings.Fields(content)),
			})
		}
	}

	for _, p := range paragraphs {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		if isParagraphHeader(trimmed) {
			flush()
			title = normalizeTitle(trimmed)
			body = body[:0]
			continue
		}
		if title != "" {
			body = append(body, trimmed)
		}
	}
	flush()
	return records
}

func isParagraphHeader(p string) bool {
	if len(p) >= 200 || p == "" {
		return false
	}
	first := rune(p[0])
	if first < 'A' || first > 'Z' {
		return false
	}
	switch p[len(p)-1] {
	case '.', '!', '?':
		return false
	}
	return true
}

// normalizeTitle strips leading numbering and bullet markers, collapses
// whitespace, and caps the result at 200 characters.
func normalizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = leadingMarkers.ReplaceAllString(title, "")
	title = whitespaceRun.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	if len(title) > maxTitleLength {
		title = strings.TrimSpace(title[:maxTitleLength])
	}
	return title
}

// dedupeKey lowercases a title and strips punctuation so trivially restyled
// duplicates collapse to one candidate.
func dedupeKey(title string) string {
	return strings.Join(tokenize(title), " ")
}
