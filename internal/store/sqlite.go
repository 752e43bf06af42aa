package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

const createBooks = `CREATE TABLE IF NOT EXISTS books (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    author TEXT NOT NULL,
    book_id TEXT NOT NULL,
    shelf INTEGER NOT NULL,
    status TEXT NOT NULL
);`

// SQLite stores the catalog in a single table. The position column keeps
// insertion order.
type SQLite struct {
	path string
	db   *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database at path and ensures
// the books table exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(createBooks); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLite{path: path, db: db}, nil
}

// Path implements Store.
func (s *SQLite) Path() string { return s.path }

// Close closes the database. Idempotent.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Load returns all rows ordered by position.
func (s *SQLite) Load() ([]types.Book, error) {
	rows, err := s.db.Query(
		"SELECT name, author, book_id, shelf, status FROM books ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []types.Book
	for rows.Next() {
		var b types.Book
		if err := rows.Scan(&b.Name, &b.Author, &b.BookID, &b.Shelf, &b.Status); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

// Save replaces every row in one transaction.
func (s *SQLite) Save(books []types.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM books"); err != nil {
		return fmt.Errorf("clearing books: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO books (position, name, author, book_id, shelf, status) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range books {
		if _, err := stmt.Exec(i, b.Name, b.Author, b.BookID, b.Shelf, b.Status); err != nil {
			return fmt.Errorf("inserting book %q: %w", b.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing books: %w", err)
	}
	return nil
}
