package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/visotime/internal/domain"
)

// encodeEntries serializes the collection in the persisted layout. A nil
// slice is written as an empty array.
func encodeEntries(entries []domain.TimeEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding entries: %w", err)
	}
	return data, nil
}

// decodeEntries parses a stored blob. Missing or null data is an empty
// collection; anything else that is not an entry array is corrupt.
func decodeEntries(data []byte) ([]domain.TimeEntry, error) {
	if len(data) == 0 {
		return []domain.TimeEntry{}, nil
	}
	var entries []domain.TimeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	return entries, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
