// Package store persists a whole catalog to disk and reads it back.
//
// Every adapter writes the full catalog on Save and reads the full catalog
// on Load; there is no incremental persistence. A missing storage file
// loads as an empty catalog.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Store loads and saves the complete list of books.
type Store interface {
	// Load returns the persisted books in their saved order.
	Load() ([]types.Book, error)

	// Save replaces the persisted books with books.
	Save(books []types.Book) error

	// Path returns the location of the backing file.
	Path() string

	// Close releases any resources held by the store.
	Close() error
}

// Checker is implemented by stores that cannot represent every book.
// Check reports a book that Save would reject.
type Checker interface {
	Check(book types.Book) error
}

// Open returns the adapter selected by cfg.Format. DataDir is created if
// it does not exist.
func Open(cfg types.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(dataDir, cfg.FileName())

	switch cfg.Format {
	case types.FormatLines:
		return NewLines(path), nil
	case types.FormatJSONL:
		return NewJSONL(path), nil
	case types.FormatSQLite:
		return OpenSQLite(path)
	default:
		return nil, types.ErrFormatUnknown
	}
}
