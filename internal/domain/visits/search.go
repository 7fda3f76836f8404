package visits

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type searchField struct {
	weight float64
	value  func(Record) string
}

// Client name counts most, then where and what the appliance is, then the
// identifiers a dispatcher might paste in.
var searchFields = []searchField{
	{weight: 3, value: func(r Record) string { return r.ClientName }},
	{weight: 2, value: func(r Record) string { return r.Address }},
	{weight: 2, value: func(r Record) string { return r.DeviceType }},
	{weight: 1, value: func(r Record) string { return r.City }},
	{weight: 1, value: func(r Record) string { return r.Brand }},
	{weight: 1, value: func(r Record) string { return r.Model }},
	{weight: 1, value: func(r Record) string { return r.Visit.ID }},
	{weight: 1, value: func(r Record) string { return r.OrderID }},
	{weight: 1, value: func(r Record) string { return r.TechnicianName }},
	{weight: 1, value: func(r Record) string { return r.ClientPhone }},
}

const (
	qualityExact       = 1.0
	qualityOneTypo     = 0.6
	qualityTwoTypos    = 0.4
	qualitySubsequence = 0.3
)

// Score returns the weighted relevance of r for query; 0 means no match.
func Score(r Record, query string) float64 {
	q := normalizeText(query)
	if q == "" {
		return 0
	}
	var score float64
	for _, f := range searchFields {
		score += f.weight * fieldQuality(q, normalizeText(f.value(r)))
	}
	return score
}

func fieldQuality(q, field string) float64 {
	if field == "" {
		return 0
	}
	if strings.Contains(field, q) {
		return qualityExact
	}
	if budget := typoBudget(q); budget > 0 {
		best := budget + 1
		for _, word := range strings.FieldsFunc(field, isSeparator) {
			if d := fuzzy.LevenshteinDistance(q, word); d < best {
				best = d
			}
		}
		if best == 0 {
			return qualityExact
		}
		if best == 1 {
			return qualityOneTypo
		}
		if best <= budget {
			return qualityTwoTypos
		}
	}
	if n := utf8.RuneCountInString(q); n >= 3 {
		if rank := fuzzy.RankMatchNormalizedFold(q, field); rank >= 0 && rank <= 2*n {
			return qualitySubsequence
		}
	}
	return 0
}

func typoBudget(q string) int {
	switch n := utf8.RuneCountInString(q); {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '-' || r == '/' || r == '.'
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(foldAccents(s)))
}

type scored struct {
	record Record
	score  float64
}

// rankBySearch keeps the records matching query and orders them by
// descending score. Equal scores are ordered by tiebreak when given, else
// keep their input order.
func rankBySearch(records []Record, query string, tiebreak func(a, b Record) int) []Record {
	matches := make([]scored, 0, len(records))
	for _, r := range records {
		if s := Score(r, query); s > 0 {
			matches = append(matches, scored{record: r, score: s})
		}
	}
	slices.SortStableFunc(matches, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		case tiebreak != nil:
			return tiebreak(a.record, b.record)
		default:
			return 0
		}
	})
	out := make([]Record, len(matches))
	for i, m := range matches {
		out[i] = m.record
	}
	return out
}
