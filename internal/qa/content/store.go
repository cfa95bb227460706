package content

import "github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"

// Store holds the extracted content records for the process lifetime. It is
// built once before the server accepts traffic and never mutated, so it is
// safe to share across concurrent requests without locking.
type Store struct {
	records []domain.ContentRecord
}

// NewStore builds a store from an already-extracted record slice.
func NewStore(records []domain.ContentRecord) *Store {
	return &Store{records: records}
}

// Open loads the data file at path and extracts its records.
func Open(path string) (*Store, error) {
	pages, err := LoadPages(path)
	if err != nil {
		return nil, err
	}
	return NewStore(Extract(pages)), nil
}

// Records returns the shared record slice. Callers must not modify it.
func (s *Store) Records() []domain.ContentRecord {
	return s.records
}

// Count reports how many records were loaded.
func (s *Store) Count() int {
	return len(s.records)
}
