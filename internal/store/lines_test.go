package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLinesSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")
	s := NewLines(path)

	require.NoError(t, s.Save(sampleBooks[:2]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dune,Herbert,1,2,available\nIt,King,2,1,checked out\n", string(data))
}

func TestLinesSaveEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")
	s := NewLines(path)

	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLinesLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.Book
	}{
		{
			name:    "two records",
			content: "Dune,Herbert,1,2,available\nIt,King,2,1,checked out\n",
			want:    sampleBooks[:2],
		},
		{
			name:    "no trailing newline",
			content: "Dune,Herbert,1,2,available",
			want:    sampleBooks[:1],
		},
		{
			name:    "crlf line endings",
			content: "Dune,Herbert,1,2,available\r\nIt,King,2,1,checked out\r\n",
			want:    sampleBooks[:2],
		},
		{
			name:    "blank lines skipped",
			content: "\nDune,Herbert,1,2,available\n\n",
			want:    sampleBooks[:1],
		},
		{
			name:    "empty fields are kept",
			content: ",,,3,\n",
			want:    []types.Book{{Shelf: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLines(writeFile(t, tt.content))

			got, err := s.Load()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinesLoadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{name: "too few fields", content: "Dune,Herbert,1,2\n", wantLine: 1},
		{name: "too many fields", content: "Dune,Herbert,1,2,available,extra\n", wantLine: 1},
		{name: "embedded comma", content: "Dune,Herbert,1,2,available\nDune, Messiah,Herbert,3,4,lost\n", wantLine: 2},
		{name: "non-integer shelf", content: "Dune,Herbert,1,two,available\n", wantLine: 1},
		{name: "error after blank line keeps file numbering", content: "\n\nbad\n", wantLine: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			s := NewLines(path)

			got, err := s.Load()

			assert.Nil(t, got)
			require.ErrorIs(t, err, types.ErrMalformedRecord)
			var mre *types.MalformedRecordError
			require.ErrorAs(t, err, &mre)
			assert.Equal(t, tt.wantLine, mre.Line)
			assert.Equal(t, path, mre.Path)
		})
	}
}

func TestLinesSaveRejectsUnencodable(t *testing.T) {
	tests := []struct {
		name string
		book types.Book
	}{
		{name: "comma in name", book: types.Book{Name: "Dune, Messiah", Author: "Herbert", BookID: "1", Shelf: 1, Status: "a"}},
		{name: "newline in status", book: types.Book{Name: "Dune", Author: "Herbert", BookID: "1", Shelf: 1, Status: "a\nb"}},
		{name: "carriage return in author", book: types.Book{Name: "Dune", Author: "Her\rbert", BookID: "1", Shelf: 1, Status: "a"}},
		{name: "comma in id", book: types.Book{Name: "Dune", Author: "Herbert", BookID: "1,2", Shelf: 1, Status: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "It,King,2,1,checked out\n")
			s := NewLines(path)

			err := s.Save([]types.Book{sampleBooks[0], tt.book})

			assert.ErrorIs(t, err, types.ErrUnencodable)
			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, "It,King,2,1,checked out\n", string(data), "file must be untouched")
		})
	}
}
