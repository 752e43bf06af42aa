package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

var books = []types.Book{
	{Name: "Dune", Author: "Herbert", BookID: "1", Shelf: 2, Status: "available"},
	{Name: "It", Author: "King", BookID: "2", Shelf: 1, Status: "checked out"},
}

func TestJSONFormatter(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, NewFormatter(FormatJSON).Format(buf, books))

	var got []types.Book
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, books, got)
	assert.Contains(t, buf.String(), `"book_id": "1"`)
}

func TestYAMLFormatter(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, NewFormatter(FormatYAML).Format(buf, books[0]))

	out := buf.String()
	assert.Contains(t, out, "name: Dune")
	assert.Contains(t, out, "book_id:")
	assert.Contains(t, out, "shelf: 2")
}

func TestTableFormatterBooks(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, NewFormatter(FormatTable).Format(buf, books))

	out := buf.String()
	upper := strings.ToUpper(out)
	for _, h := range []string{"NAME", "AUTHOR", "ID", "SHELF", "STATUS"} {
		assert.Contains(t, upper, h)
	}
	assert.Contains(t, out, "Herbert")
	assert.Contains(t, out, "checked out")
	assert.Less(t, strings.Index(out, "Herbert"), strings.Index(out, "King"), "rows keep input order")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, NewFormatter(FormatTable).Format(buf, map[string]string{"status": "available"}))

	assert.Contains(t, buf.String(), `"status": "available"`)
}

func TestBooksData(t *testing.T) {
	data := BooksData(books)

	assert.Equal(t, []string{"Name", "Author", "ID", "Shelf", "Status"}, data.Headers)
	assert.Equal(t, [][]string{
		{"Dune", "Herbert", "1", "2", "available"},
		{"It", "King", "2", "1", "checked out"},
	}, data.Rows)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "csv", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}
