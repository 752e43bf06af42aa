// Package bookshelf holds build metadata for the shelf CLI.
package bookshelf

// Version is the release version reported by `shelf version`.
const Version = "0.1.0"
