package riskdiff

import "strings"

// lexicon holds the scoring vocabulary for one category. Phrase hits are
// worth phraseWeight keyword hits because multi-word phrases are far less
// likely to appear by accident.
type lexicon struct {
	keywords []string
	phrases  []string
}

const phraseWeight = 5

// categoryOrder fixes iteration order so scoring ties resolve identically on
// every call.
var categoryOrder = []Category{
	CategoryRegulatory,
	CategoryClinical,
	CategoryCompetitive,
	CategoryFinancial,
	CategoryOperational,
	CategoryIP,
	CategoryLegal,
	CategoryReimbursement,
	CategoryCybersecurity,
}

var categoryLexicons = map[Category]lexicon{
	CategoryRegulatory: {
		keywords: []string{"fda", "regulatory", "regulation", "approval", "compliance", "510(k)", "premarket", "cms", "sec", "cgmp"},
		phrases:  []string{"regulatory approval", "warning letter", "regulatory requirements", "government regulation", "failure to comply"},
	},
	CategoryClinical: {
		keywords: []string{"clinical", "trial", "patient", "efficacy", "enrollment", "preclinical", "endpoint", "dosing", "adverse"},
		phrases:  []string{"clinical trial", "clinical studies", "clinical hold", "adverse events", "patient enrollment"},
	},
	CategoryCompetitive: {
		keywords: []string{"competitor", "competition", "competitive", "pricing", "alternative", "obsolete"},
		phrases:  []string{"intense competition", "competitive pressure", "competing products", "larger competitors", "market share"},
	},
	CategoryFinancial: {
		keywords: []string{"capital", "liquidity", "indebtedness", "losses", "dilution", "financing", "revenue", "covenant"},
		phrases:  []string{"going concern", "additional capital", "operating losses", "material weakness", "substantial doubt", "raise additional funds"},
	},
	CategoryOperational: {
		keywords: []string{"manufacturing", "supplier", "supply", "facility", "personnel", "distribution", "inventory", "logistics"},
		phrases:  []string{"supply chain", "single source", "key personnel", "manufacturing capacity", "third-party manufacturers"},
	},
	CategoryIP: {
		keywords: []string{"patent", "trademark", "proprietary", "infringement", "license", "confidentiality"},
		phrases:  []string{"intellectual property", "patent protection", "trade secrets", "patent infringement"},
	},
	CategoryLegal: {
		keywords: []string{"litigation", "lawsuit", "liability", "settlement", "indemnification", "claims"},
		phrases:  []string{"class action", "legal proceedings", "product liability", "securities litigation"},
	},
	CategoryReimbursement: {
		keywords: []string{"reimbursement", "payer", "payor", "medicare", "medicaid", "coverage"},
		phrases:  []string{"third-party payors", "coverage and reimbursement", "reimbursement rates", "coverage decisions"},
	},
	CategoryCybersecurity: {
		keywords: []string{"cybersecurity", "cyberattack", "breach", "hacking", "ransomware", "privacy"},
		phrases:  []string{"data breach", "information systems", "security incident", "personal data", "cyber attacks"},
	},
}

// Categorize assigns exactly one category to the text. The strictly highest
// lexicon score wins; ties and all-zero scores fall back to general. The
// function is pure: the same text always yields the same category.
func Categorize(text string) Category {
	lower := strings.ToLower(text)

	best := CategoryGeneral
	bestScore := 0
	tied := false
	for _, cat := range categoryOrder {
		lex := categoryLexicons[cat]
		score := 0
		for _, kw := range lex.keywords {
			score += strings.Count(lower, kw)
		}
		for _, ph := range lex.phrases {
			score += phraseWeight * strings.Count(lower, ph)
		}
		switch {
		case score > bestScore:
			best = cat
			bestScore = score
			tied = false
		case score == bestScore && score > 0:
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return CategoryGeneral
	}
	return best
}
