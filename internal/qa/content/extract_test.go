package content

import (
	"strings"
	"testing"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePages_TopLevelArray(t *testing.T) {
	pages, err := DecodePages([]byte(`[{"title":"A","content":"hello"}]`))
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "A", pages[0]["title"])
}

func TestDecodePages_PagesKey(t *testing.T) {
	pages, err := DecodePages([]byte(`{"pages":[{"title":"A"},{"title":"B"}]}`))
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestDecodePages_MalformedShapes(t *testing.T) {
	_, err := DecodePages([]byte(`"just a string"`))
	assert.ErrorIs(t, err, domain.ErrMalformedPageCollection)

	_, err = DecodePages([]byte(`{"not_pages": []}`))
	assert.ErrorIs(t, err, domain.ErrMalformedPageCollection)

	_, err = DecodePages([]byte(`{invalid json`))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.PageEmpty, Classify(nil))
	assert.Equal(t, domain.PageEmpty, Classify(map[string]any{"title": "T"}))
	assert.Equal(t, domain.PageEmpty, Classify(map[string]any{"content": "   "}))
	assert.Equal(t, domain.PageEmpty, Classify(map[string]any{"content": 42}))
	assert.Equal(t, domain.PageFlat, Classify(map[string]any{"content": "hello"}))
	assert.Equal(t, domain.PageSectioned, Classify(map[string]any{
		"content":  "ignored",
		"sections": []any{map[string]any{"content": "x"}},
	}))
	// An empty sections array does not make a page sectioned.
	assert.Equal(t, domain.PageFlat, Classify(map[string]any{
		"content":  "hello",
		"sections": []any{},
	}))
}

func TestExtract_SectionedPage(t *testing.T) {
	pages := []map[string]any{
		{
			"title": "Admissions",
			"url":   "https://college.edu/admissions",
			"sections": []any{
				map[string]any{"heading": "Deadlines", "content": "  Apply by June 1.  "},
				map[string]any{"heading": "Skipped", "content": "   "},
				map[string]any{"heading": "NoContent"},
				map[string]any{"heading": "Fees", "content": "Application fee is $50."},
			},
		},
	}

	records := Extract(pages)
	require.Len(t, records, 2)

	assert.Equal(t, "Admissions", records[0].Title)
	assert.Equal(t, "https://college.edu/admissions", records[0].URL)
	assert.Equal(t, "Deadlines", records[0].Heading)
	assert.Equal(t, "Apply by June 1.", records[0].Content)

	assert.Equal(t, "Fees", records[1].Heading)
	assert.Equal(t, "Application fee is $50.", records[1].Content)
}

func TestExtract_SectionsTakePrecedenceOverContent(t *testing.T) {
	pages := []map[string]any{
		{
			"title":    "Home",
			"content":  "top-level text that must be ignored",
			"sections": []any{map[string]any{"heading": "H", "content": "section text"}},
		},
	}

	records := Extract(pages)
	require.Len(t, records, 1)
	assert.Equal(t, "section text", records[0].Content)
}

func TestExtract_FlatPage(t *testing.T) {
	pages := []map[string]any{
		{"title": "Library", "url": "https://college.edu/library", "content": "  Open 8am-10pm.  "},
	}

	records := Extract(pages)
	require.Len(t, records, 1)
	assert.Equal(t, "Library", records[0].Title)
	assert.Empty(t, records[0].Heading)
	assert.Equal(t, "Open 8am-10pm.", records[0].Content)
}

func TestExtract_DropsUnusablePages(t *testing.T) {
	pages := []map[string]any{
		nil,
		{},
		{"title": "OnlyTitle"},
		{"content": nil},
		{"content": 123},
		{"content": "   \n\t "},
		{"sections": []any{"not an object", map[string]any{"content": 7}}},
	}

	assert.Empty(t, Extract(pages))
}

func TestExtract_NonStringFieldsCoerceToEmpty(t *testing.T) {
	pages := []map[string]any{
		{"title": 42, "url": true, "content": "real text"},
	}

	records := Extract(pages)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Title)
	assert.Empty(t, records[0].URL)
}

func TestExtract_PreservesOrder(t *testing.T) {
	pages := []map[string]any{
		{"title": "P1", "sections": []any{
			map[string]any{"heading": "a", "content": "one"},
			map[string]any{"heading": "b", "content": "two"},
		}},
		{"title": "P2", "content": "three"},
	}

	records := Extract(pages)
	require.Len(t, records, 3)
	assert.Equal(t, "one", records[0].Content)
	assert.Equal(t, "two", records[1].Content)
	assert.Equal(t, "three", records[2].Content)
}

func TestExtract_Idempotent(t *testing.T) {
	pages := []map[string]any{
		{"title": "A", "sections": []any{map[string]any{"heading": "H1", "content": "hello world"}}},
		{"title": "B", "content": "flat text"},
	}

	first := Extract(pages)
	second := Extract(pages)
	assert.Equal(t, first, second)
}

func TestExtract_AllRecordsHaveTrimmedContent(t *testing.T) {
	pages := []map[string]any{
		{"content": " padded "},
		{"sections": []any{map[string]any{"content": "\n\tinner\n"}}},
	}

	for _, r := range Extract(pages) {
		assert.NotEmpty(t, r.Content)
		assert.Equal(t, strings.TrimSpace(r.Content), r.Content)
	}
}
