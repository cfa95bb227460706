package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
)

// LoadPages reads the scraped-pages data file and returns the raw page
// collection. The file is either a top-level JSON array of pages or an
// object carrying the array under a "pages" key. Anything else is a
// load-time error; individual pages keep their loose shape and are
// validated later by Extract.
func LoadPages(path string) ([]map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pages file: %w", err)
	}
	return DecodePages(b)
}

// DecodePages decodes a raw page collection from JSON bytes.
func DecodePages(b []byte) ([]map[string]any, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode pages file: %w", err)
	}

	var arr []any
	switch v := doc.(type) {
	case []any:
		arr = v
	case map[string]any:
		nested, ok := v["pages"].([]any)
		if !ok {
			return nil, domain.ErrMalformedPageCollection
		}
		arr = nested
	default:
		return nil, domain.ErrMalformedPageCollection
	}

	pages := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		// Non-object entries are tolerated and classified as empty pages.
		obj, _ := v.(map[string]any)
		pages = append(pages, obj)
	}
	return pages, nil
}
