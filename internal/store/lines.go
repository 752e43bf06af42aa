package store

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// lineFields is the number of comma-separated fields per record:
// name, author, id, shelf, status.
const lineFields = 5

// Lines stores one book per line as comma-joined fields with no quoting or
// escaping. A field containing a comma or a line break cannot be stored;
// Save rejects such books with ErrUnencodable.
type Lines struct {
	path string
}

var (
	_ Store   = (*Lines)(nil)
	_ Checker = (*Lines)(nil)
)

// NewLines returns a Lines store backed by the file at path.
func NewLines(path string) *Lines {
	return &Lines{path: path}
}

// Path implements Store.
func (s *Lines) Path() string { return s.path }

// Close implements Store.
func (s *Lines) Close() error { return nil }

// Check implements Checker.
func (s *Lines) Check(book types.Book) error { return checkEncodable(book) }

// Load reads every record. Any line that does not split into exactly five
// fields, or whose shelf is not an integer, fails the whole load.
func (s *Lines) Load() ([]types.Book, error) {
	var books []types.Book
	err := scanLines(s.path, func(lineNo int, line []byte) error {
		book, err := parseLine(string(line))
		if err != nil {
			return &types.MalformedRecordError{Path: s.path, Line: lineNo, Reason: err.Error()}
		}
		books = append(books, book)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// Save overwrites the file with books in order.
func (s *Lines) Save(books []types.Book) error {
	for i, b := range books {
		if err := checkEncodable(b); err != nil {
			return fmt.Errorf("book %d (%q): %w", i+1, b.Name, err)
		}
	}
	return writeAtomic(s.path, func(w *bufio.Writer) error {
		for _, b := range books {
			if _, err := w.WriteString(formatLine(b)); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
		return nil
	})
}

func formatLine(b types.Book) string {
	return strings.Join([]string{
		b.Name,
		b.Author,
		b.BookID,
		strconv.Itoa(b.Shelf),
		b.Status,
	}, ",") + "\n"
}

func parseLine(line string) (types.Book, error) {
	fields := strings.Split(line, ",")
	if len(fields) != lineFields {
		return types.Book{}, fmt.Errorf("expected %d fields, got %d", lineFields, len(fields))
	}
	shelf, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return types.Book{}, fmt.Errorf("shelf %q is not an integer", fields[3])
	}
	return types.Book{
		Name:   fields[0],
		Author: fields[1],
		BookID: fields[2],
		Shelf:  shelf,
		Status: fields[4],
	}, nil
}

// checkEncodable reports the first text field that would break the line
// format.
func checkEncodable(b types.Book) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", b.Name},
		{"author", b.Author},
		{"book_id", b.BookID},
		{"status", b.Status},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, ",\r\n") {
			return fmt.Errorf("%w: %s contains a comma or line break", types.ErrUnencodable, f.name)
		}
	}
	return nil
}
