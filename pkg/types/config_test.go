package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty format returns ErrFormatEmpty",
			config:  Config{Format: "", DataDir: "/tmp/data"},
			wantErr: ErrFormatEmpty,
		},
		{
			name:    "unknown format returns ErrFormatUnknown",
			config:  Config{Format: "xml", DataDir: "/tmp/data"},
			wantErr: ErrFormatUnknown,
		},
		{
			name:   "valid lines config",
			config: Config{Format: FormatLines, DataDir: "/tmp/data"},
		},
		{
			name:   "valid jsonl config",
			config: Config{Format: FormatJSONL, DataDir: "/tmp/data"},
		},
		{
			name:   "sqlite with empty DataDir is valid at config level",
			config: Config{Format: FormatSQLite, DataDir: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigFileName(t *testing.T) {
	tests := []struct {
		config Config
		want   string
	}{
		{Config{Format: FormatLines}, "books.txt"},
		{Config{Format: FormatJSONL}, "books.jsonl"},
		{Config{Format: FormatSQLite}, "books.db"},
		{Config{Format: FormatLines, File: "library.csv"}, "library.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.config.FileName(); got != tt.want {
				t.Fatalf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
