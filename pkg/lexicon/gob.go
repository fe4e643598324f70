// CLAUDE:SUMMARY Gob serialization of lexicon pack entries for fast loading.
package lexicon

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadGob deserializes pack entries from a gob-encoded file.
func loadGob(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return entries, nil
}

// SaveGob serializes entries to a gob-encoded file at path.
func SaveGob(entries []Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(entries); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}
