// Package library is the application context for one catalog session.
//
// A Library owns a catalog and the store it was loaded from. Open reads
// the storage file once; Close writes it back once if anything changed.
// There is no incremental persistence in between.
package library

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/bookshelf/internal/catalog"
	"github.com/mesh-intelligence/bookshelf/internal/store"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// Order selects how List sorts the catalog.
type Order string

// List orders.
const (
	OrderAuthor    Order = "author"
	OrderShelf     Order = "shelf"
	OrderInsertion Order = "none"
)

// ErrUnknownOrder is returned by ParseOrder for unrecognized names.
var ErrUnknownOrder = errors.New("unknown sort order")

// ParseOrder converts a flag value to an Order.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case OrderAuthor, OrderShelf, OrderInsertion:
		return o, nil
	case "":
		return OrderAuthor, nil
	default:
		return "", fmt.Errorf("%w %q (valid: author, shelf, none)", ErrUnknownOrder, s)
	}
}

// Library is the catalog plus its backing store.
type Library struct {
	store   store.Store
	catalog *catalog.Catalog
	log     zerolog.Logger
	dirty   bool
	closed  bool
}

// Open opens the store described by cfg and loads the catalog from it.
func Open(cfg types.Config, log zerolog.Logger) (*Library, error) {
	s, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return New(s, log)
}

// New loads the catalog from an already opened store. The Library takes
// ownership of s and closes it on Close.
func New(s store.Store, log zerolog.Logger) (*Library, error) {
	books, err := s.Load()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Debug().Str("path", s.Path()).Int("books", len(books)).Msg("catalog loaded")

	return &Library{
		store:   s,
		catalog: catalog.New(books),
		log:     log,
	}, nil
}

// Path returns the storage location.
func (l *Library) Path() string {
	return l.store.Path()
}

// Add validates book and appends it. An empty BookID is replaced with a
// generated UUID v7. Returns the stored book.
func (l *Library) Add(book types.Book) (types.Book, error) {
	if l.closed {
		return types.Book{}, types.ErrClosed
	}
	if book.BookID == "" {
		book.BookID = generateID()
	}
	if err := book.Validate(); err != nil {
		return types.Book{}, err
	}
	if err := l.checkStorable(book); err != nil {
		return types.Book{}, err
	}

	l.catalog.Add(book)
	l.dirty = true
	l.log.Info().Str("name", book.Name).Str("book_id", book.BookID).Msg("book added")
	return book, nil
}

// Search returns the first book named name, ignoring case. Returns
// ErrNotFound if there is none.
func (l *Library) Search(name string) (types.Book, error) {
	if l.closed {
		return types.Book{}, types.ErrClosed
	}
	book, ok := l.catalog.FindByName(name)
	if !ok {
		return types.Book{}, fmt.Errorf("%w: %q", types.ErrNotFound, name)
	}
	return book, nil
}

// Status returns the status of the first book named name.
func (l *Library) Status(name string) (string, error) {
	book, err := l.Search(name)
	if err != nil {
		return "", err
	}
	return book.Status, nil
}

// Edit updates the shelf and status of the first book named name.
func (l *Library) Edit(name string, shelf int, status string) error {
	if l.closed {
		return types.ErrClosed
	}
	if err := types.ValidateShelf(shelf); err != nil {
		return err
	}
	if err := types.ValidateStatus(status); err != nil {
		return err
	}
	if err := l.checkStorable(types.Book{Status: status}); err != nil {
		return err
	}

	if !l.catalog.Edit(name, shelf, status) {
		return fmt.Errorf("%w: %q", types.ErrNotFound, name)
	}
	l.dirty = true
	l.log.Info().Str("name", name).Int("shelf", shelf).Str("status", status).Msg("book edited")
	return nil
}

// Remove deletes the first book named name.
func (l *Library) Remove(name string) error {
	if l.closed {
		return types.ErrClosed
	}
	if !l.catalog.Remove(name) {
		return fmt.Errorf("%w: %q", types.ErrNotFound, name)
	}
	l.dirty = true
	l.log.Info().Str("name", name).Msg("book removed")
	return nil
}

// List returns the catalog in the requested order.
func (l *Library) List(order Order) ([]types.Book, error) {
	if l.closed {
		return nil, types.ErrClosed
	}
	switch order {
	case OrderShelf:
		return l.catalog.SortedByShelf(), nil
	case OrderInsertion:
		return l.catalog.Books(), nil
	default:
		return l.catalog.SortedByAuthor(), nil
	}
}

// Len returns the number of books in the catalog.
func (l *Library) Len() int {
	return l.catalog.Len()
}

// Save writes the whole catalog to the store regardless of changes.
func (l *Library) Save() error {
	if l.closed {
		return types.ErrClosed
	}
	if err := l.store.Save(l.catalog.Books()); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	l.dirty = false
	l.log.Debug().Str("path", l.store.Path()).Int("books", l.catalog.Len()).Msg("catalog saved")
	return nil
}

// Close saves the catalog if it changed since Open and releases the store.
// Close is idempotent. If the save fails the store is left open so the
// caller can retry.
func (l *Library) Close() error {
	if l.closed {
		return nil
	}
	if l.dirty {
		if err := l.Save(); err != nil {
			return err
		}
	}
	l.closed = true
	return l.store.Close()
}

// checkStorable rejects values the store cannot write back.
func (l *Library) checkStorable(book types.Book) error {
	c, ok := l.store.(store.Checker)
	if !ok {
		return nil
	}
	if err := c.Check(book); err != nil {
		return fmt.Errorf("%w: %w", types.ErrInvalidBook, err)
	}
	return nil
}

// generateID returns a UUID v7, falling back to v4.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
