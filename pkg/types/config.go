package types

import "errors"

// Config selects the storage format and location for a library.
type Config struct {
	Format  string `json:"format" yaml:"format"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// File overrides the format's default file name inside DataDir.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Supported storage formats.
const (
	FormatLines  = "lines"
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrFormatEmpty   = errors.New("format must not be empty")
	ErrFormatUnknown = errors.New("unknown format")
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatLines:  true,
	FormatJSONL:  true,
	FormatSQLite: true,
}

// DefaultFileNames maps each format to the file it uses when Config.File
// is empty.
var DefaultFileNames = map[string]string{
	FormatLines:  "books.txt",
	FormatJSONL:  "books.jsonl",
	FormatSQLite: "books.db",
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Format == "" {
		return ErrFormatEmpty
	}
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	return nil
}

// FileName returns the storage file name for the configured format.
func (c Config) FileName() string {
	if c.File != "" {
		return c.File
	}
	return DefaultFileNames[c.Format]
}
