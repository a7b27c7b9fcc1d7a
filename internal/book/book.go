// Package book defines the immutable book record held by the library catalog
// and the parser that builds it from a row of delimited text fields.
package book

import (
	"encoding/json"
	"fmt"
)

// Book is an immutable catalog entry. Two books are the same book when their
// ids match, whatever their other fields say.
type Book struct {
	id                int64
	title             string
	author            string
	isbn              string
	publisher         string
	language          Language
	yearOfPublication int16
}

// nullObject is returned by lookups that find nothing.
var nullObject = New(0, "", "", "", "", English, -1)

// New creates a book from its field values.
func New(id int64, title, author, isbn, publisher string, language Language, yearOfPublication int16) Book {
	return Book{
		id:                id,
		title:             title,
		author:            author,
		isbn:              isbn,
		publisher:         publisher,
		language:          language,
		yearOfPublication: yearOfPublication,
	}
}

// NullObject returns the "not found" book: id 0, empty text, ENGLISH, year -1.
func NullObject() Book {
	return nullObject
}

// ID returns the catalog id. It alone decides book identity.
func (b Book) ID() int64 { return b.id }

// Title returns the book title.
func (b Book) Title() string { return b.title }

// Author returns the author name as it appears in the library file.
func (b Book) Author() string { return b.author }

// ISBN returns the ISBN text, unvalidated.
func (b Book) ISBN() string { return b.isbn }

// Publisher returns the publisher name.
func (b Book) Publisher() string { return b.publisher }

// Language returns the language the book is written in.
func (b Book) Language() Language { return b.language }

// YearOfPublication returns the publication year. The sentinel uses -1.
func (b Book) YearOfPublication() int16 { return b.yearOfPublication }

// IsNull reports whether b is the "not found" book.
func (b Book) IsNull() bool {
	return b.id == 0
}

// Equal reports whether b and other share an id.
func (b Book) Equal(other Book) bool {
	return b.id == other.id
}

// Key returns the identity of b, suitable as a map key. It is consistent with Equal.
func (b Book) Key() int64 {
	return b.id
}

// String formats every field, e.g. Book{id=1, title=..., year=2004}.
func (b Book) String() string {
	return fmt.Sprintf("Book{id=%d, title=%s, author=%s, isbn=%s, publisher=%s, language=%s, year=%d}",
		b.id, b.title, b.author, b.isbn, b.publisher, b.language, b.yearOfPublication)
}

// Record is the exported snapshot of a Book used for serialization and export.
type Record struct {
	ID                int64    `json:"id" yaml:"id"`
	Title             string   `json:"title" yaml:"title"`
	Author            string   `json:"author" yaml:"author"`
	ISBN              string   `json:"isbn" yaml:"isbn"`
	Publisher         string   `json:"publisher" yaml:"publisher"`
	Language          Language `json:"language" yaml:"language"`
	YearOfPublication int16    `json:"year_of_publication" yaml:"year_of_publication"`
}

// Record returns a copy of b's fields.
func (b Book) Record() Record {
	return Record{
		ID:                b.id,
		Title:             b.title,
		Author:            b.author,
		ISBN:              b.isbn,
		Publisher:         b.publisher,
		Language:          b.language,
		YearOfPublication: b.yearOfPublication,
	}
}

// Book builds the immutable book described by r.
func (r Record) Book() Book {
	return New(r.ID, r.Title, r.Author, r.ISBN, r.Publisher, r.Language, r.YearOfPublication)
}

// MarshalJSON encodes the book as its Record.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Record())
}

// MarshalYAML encodes the book as its Record.
func (b Book) MarshalYAML() (any, error) {
	return b.Record(), nil
}

// Records converts books to their serializable form, keeping order.
func Records(books []Book) []Record {
	records := make([]Record, len(books))
	for i, b := range books {
		records[i] = b.Record()
	}
	return records
}
