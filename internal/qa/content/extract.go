package content

import (
	"strings"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
)

// Classify decides how a raw page will be flattened. A page with a
// non-empty sections array wins over its own content field; a page whose
// content is a non-blank string is flat; everything else is empty.
func Classify(page map[string]any) domain.PageKind {
	if page == nil {
		return domain.PageEmpty
	}
	if sections, _ := page["sections"].([]any); len(sections) > 0 {
		return domain.PageSectioned
	}
	if s := stringField(page, "content"); strings.TrimSpace(s) != "" {
		return domain.PageFlat
	}
	return domain.PageEmpty
}

// Extract flattens the raw page collection into content records. Pure and
// deterministic: page order is preserved, then section order within a page.
// Every returned record has non-empty, whitespace-trimmed Content; pages
// and sections without usable content are dropped.
func Extract(pages []map[string]any) []domain.ContentRecord {
	records := make([]domain.ContentRecord, 0, len(pages))

	for _, page := range pages {
		title := stringField(page, "title")
		url := stringField(page, "url")

		switch Classify(page) {
		case domain.PageSectioned:
			sections, _ := page["sections"].([]any)
			for _, v := range sections {
				sec, ok := v.(map[string]any)
				if !ok {
					continue
				}
				body := strings.TrimSpace(stringField(sec, "content"))
				if body == "" {
					continue
				}
				records = append(records, domain.ContentRecord{
					Title:   title,
					URL:     url,
					Heading: stringField(sec, "heading"),
					Content: body,
				})
			}
		case domain.PageFlat:
			records = append(records, domain.ContentRecord{
				Title:   title,
				URL:     url,
				Content: strings.TrimSpace(stringField(page, "content")),
			})
		}
	}

	return records
}

// stringField safely extracts a string field from a loose page object.
// Absent or non-string values coerce to "".
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
