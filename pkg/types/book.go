package types

import (
	"fmt"
	"strings"
)

// Book is a single catalog entry.
type Book struct {
	Name   string `json:"name" yaml:"name"`
	Author string `json:"author" yaml:"author"`
	BookID string `json:"book_id" yaml:"book_id"` // Opaque; not required to be unique.
	Shelf  int    `json:"shelf" yaml:"shelf"`     // Positive shelf number.
	Status string `json:"status" yaml:"status"`   // Free text, e.g. "available".
}

// Validate checks that every text field is present and that Shelf is a
// positive integer. The returned error wraps ErrInvalidBook.
func (b Book) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", b.Name},
		{"author", b.Author},
		{"book_id", b.BookID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidBook, r.field)
		}
	}
	if err := ValidateStatus(b.Status); err != nil {
		return err
	}
	return ValidateShelf(b.Shelf)
}

// ValidateStatus returns an error wrapping ErrInvalidBook if status is
// blank.
func ValidateStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("%w: status must not be empty", ErrInvalidBook)
	}
	return nil
}

// ValidateShelf returns an error wrapping ErrInvalidBook unless shelf >= 1.
func ValidateShelf(shelf int) error {
	if shelf < 1 {
		return fmt.Errorf("%w: shelf must be a positive integer, got %d", ErrInvalidBook, shelf)
	}
	return nil
}
