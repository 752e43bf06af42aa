// Package catalog holds the in-memory book catalog for one session.
//
// The catalog is an insertion-ordered sequence. Names are not unique:
// FindByName, Edit and Remove act on the first case-insensitive match, so
// with duplicate names only the earliest-added book is reachable by name.
// A Catalog is not safe for concurrent use.
package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Catalog is an ordered collection of books.
type Catalog struct {
	books []types.Book
}

// New returns a catalog holding a copy of books in the given order.
func New(books []types.Book) *Catalog {
	return &Catalog{books: slices.Clone(books)}
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns a copy of the catalog in insertion order.
func (c *Catalog) Books() []types.Book {
	return slices.Clone(c.books)
}

// Add appends book. There is no duplicate check.
func (c *Catalog) Add(book types.Book) {
	c.books = append(c.books, book)
}

// FindByName returns the first book whose name equals name, ignoring case.
func (c *Catalog) FindByName(name string) (types.Book, bool) {
	i := c.index(name)
	if i < 0 {
		return types.Book{}, false
	}
	return c.books[i], true
}

// Edit sets the shelf and status of the first book named name. Name,
// author and id are left untouched. Reports whether a book matched.
func (c *Catalog) Edit(name string, shelf int, status string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.books[i].Shelf = shelf
	c.books[i].Status = status
	return true
}

// Remove deletes the first book named name. Reports whether a book matched.
func (c *Catalog) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.books = slices.Delete(c.books, i, i+1)
	return true
}

// SortedByAuthor returns a new slice ordered by lowercased author name.
// Books with equal authors keep their insertion order.
func (c *Catalog) SortedByAuthor() []types.Book {
	fold := cases.Lower(language.Und)
	keys := make(map[string]string, len(c.books))
	for _, b := range c.books {
		if _, ok := keys[b.Author]; !ok {
			keys[b.Author] = fold.String(b.Author)
		}
	}

	sorted := slices.Clone(c.books)
	slices.SortStableFunc(sorted, func(a, b types.Book) int {
		return cmp.Compare(keys[a.Author], keys[b.Author])
	})
	return sorted
}

// SortedByShelf returns a new slice ordered by shelf number. Books on the
// same shelf keep their insertion order.
func (c *Catalog) SortedByShelf() []types.Book {
	sorted := slices.Clone(c.books)
	slices.SortStableFunc(sorted, func(a, b types.Book) int {
		return cmp.Compare(a.Shelf, b.Shelf)
	})
	return sorted
}

// index returns the position of the first book named name, or -1.
func (c *Catalog) index(name string) int {
	fold := cases.Lower(language.Und)
	want := fold.String(name)
	for i, b := range c.books {
		if fold.String(b.Name) == want {
			return i
		}
	}
	return -1
}
