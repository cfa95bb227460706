package retrieval

import (
	"strings"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
)

// NoRelevantInfo is returned by Compose when nothing matched. Callers use
// it to avoid sending the model an empty context.
const NoRelevantInfo = "No relevant info found."

// DefaultContextLimit caps how many matched records go into the prompt.
const DefaultContextLimit = 8

// Compose renders the first limit matches into the context block sent to
// the model. This is a truncation of the matcher's output, not a best-of-N
// pick: matches carry no scores. Each record becomes a block of optional
// "Title:" and "Heading:" lines followed by its content; blocks are joined
// by a blank line.
func Compose(matches []domain.ContentRecord, limit int) string {
	if limit <= 0 {
		limit = DefaultContextLimit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if len(matches) == 0 {
		return NoRelevantInfo
	}

	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		var parts []string
		if m.Title != "" {
			parts = append(parts, "Title: "+m.Title)
		}
		if m.Heading != "" {
			parts = append(parts, "Heading: "+m.Heading)
		}
		parts = append(parts, m.Content)
		blocks = append(blocks, strings.Join(parts, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
