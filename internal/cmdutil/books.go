package cmdutil

import (
	"github.com/lepinkainen/libris/internal/book"
	"github.com/lepinkainen/libris/internal/datastore"
)

// BookRow maps a book to a library_books row.
func BookRow(b book.Book) map[string]any {
	return StructToMap(b.Record(), StructToMapOptions{UseJSONTags: true})
}

// WriteBooksToDatastore writes books to the library_books table when
// Datasette output is enabled.
func WriteBooksToDatastore(books []book.Book) error {
	return WriteToDatastore(books, datastore.BooksSchema, datastore.BooksTable, "books", BookRow)
}
