package retrieval

import (
	"strings"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
)

// Normalize lowercases s, strips every rune outside [a-z0-9 ], collapses
// whitespace runs to a single space and trims the ends. Matching happens
// entirely in this normalized space so punctuation and casing in either the
// question or the page text never block a hit.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Match filters records down to those whose normalized content, heading or
// title contains the normalized question as a literal substring. The result
// is a sub-sequence of records in their original order; there is no scoring
// and no sorting. A blank question matches nothing.
func Match(records []domain.ContentRecord, question string) []domain.ContentRecord {
	q := Normalize(question)
	if q == "" {
		return nil
	}

	var out []domain.ContentRecord
	for _, r := range records {
		if strings.Contains(Normalize(r.Content), q) ||
			strings.Contains(Normalize(r.Heading), q) ||
			strings.Contains(Normalize(r.Title), q) {
			out = append(out, r)
		}
	}
	return out
}
