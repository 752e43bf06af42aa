// Package types defines the Book entity, the storage Config, and the
// standard error values shared by the catalog, the storage adapters, and
// the shelf CLI.
package types
