package domain

// ContentRecord is a flattened, validated unit of searchable text derived
// from one scraped page or one of its sections. Records are built once at
// startup and shared read-only across requests.
type ContentRecord struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// PageKind classifies a raw page after the load-time validation pass.
type PageKind int

const (
	// PageEmpty has no usable content and produces no records.
	PageEmpty PageKind = iota
	// PageFlat carries its content directly and produces one record.
	PageFlat
	// PageSectioned carries content under sections; top-level content is
	// ignored and each non-blank section produces one record.
	PageSectioned
)
