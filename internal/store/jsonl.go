package store

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// JSONL stores one JSON object per line. Field values are escaped, so
// commas and line breaks round-trip. Unknown fields are ignored on load.
type JSONL struct {
	path string
}

var _ Store = (*JSONL)(nil)

// NewJSONL returns a JSONL store backed by the file at path.
func NewJSONL(path string) *JSONL {
	return &JSONL{path: path}
}

// Path implements Store.
func (s *JSONL) Path() string { return s.path }

// Close implements Store.
func (s *JSONL) Close() error { return nil }

// Load reads every record. A line that is not a JSON object fails the
// whole load.
func (s *JSONL) Load() ([]types.Book, error) {
	var books []types.Book
	err := scanLines(s.path, func(lineNo int, line []byte) error {
		var b types.Book
		if err := json.Unmarshal(line, &b); err != nil {
			return &types.MalformedRecordError{Path: s.path, Line: lineNo, Reason: err.Error()}
		}
		books = append(books, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// Save overwrites the file with books in order.
func (s *JSONL) Save(books []types.Book) error {
	return writeAtomic(s.path, func(w *bufio.Writer) error {
		for _, b := range books {
			rec, err := json.Marshal(b)
			if err != nil {
				return fmt.Errorf("encoding book %q: %w", b.Name, err)
			}
			if _, err := w.Write(rec); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("writing newline: %w", err)
			}
		}
		return nil
	})
}
