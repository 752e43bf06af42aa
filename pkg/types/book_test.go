package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookValidate(t *testing.T) {
	valid := Book{Name: "Dune", Author: "Herbert", BookID: "1", Shelf: 2, Status: "available"}

	tests := []struct {
		name    string
		mutate  func(b *Book)
		wantErr bool
	}{
		{name: "complete book", mutate: func(b *Book) {}},
		{name: "empty name", mutate: func(b *Book) { b.Name = "" }, wantErr: true},
		{name: "blank author", mutate: func(b *Book) { b.Author = "   " }, wantErr: true},
		{name: "empty id", mutate: func(b *Book) { b.BookID = "" }, wantErr: true},
		{name: "empty status", mutate: func(b *Book) { b.Status = "" }, wantErr: true},
		{name: "blank status", mutate: func(b *Book) { b.Status = " \t" }, wantErr: true},
		{name: "zero shelf", mutate: func(b *Book) { b.Shelf = 0 }, wantErr: true},
		{name: "negative shelf", mutate: func(b *Book) { b.Shelf = -4 }, wantErr: true},
		{name: "shelf one", mutate: func(b *Book) { b.Shelf = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)

			err := b.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBook)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, ValidateStatus("checked out"))
	assert.ErrorIs(t, ValidateStatus(""), ErrInvalidBook)
	assert.ErrorIs(t, ValidateStatus("   "), ErrInvalidBook)
}

func TestMalformedRecordErrorIs(t *testing.T) {
	err := &MalformedRecordError{Path: "books.txt", Line: 3, Reason: "expected 5 fields, got 4"}

	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, "books.txt:3: expected 5 fields, got 4", err.Error())
}
