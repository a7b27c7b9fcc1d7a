package datastore

// BooksTable is the table catalog exports are written to.
const BooksTable = "library_books"

// BooksSchema creates BooksTable. Column names match book.Record's json tags.
const BooksSchema = `CREATE TABLE IF NOT EXISTS library_books (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	isbn TEXT,
	publisher TEXT,
	language TEXT NOT NULL,
	year_of_publication INTEGER
)`
