// Package library holds the in-memory book catalog and its query operations.
//
// A Library is built once from already parsed books and is read-only from
// then on, so it can be shared between goroutines without locking.
package library

import (
	"strings"

	"github.com/lepinkainen/libris/internal/book"
)

// Library is the central store of books. It keeps the books in the order
// they were supplied and only hands out read-only views or fresh slices.
type Library struct {
	books []book.Book
}

// New creates a library owning a copy of books. A nil or empty slice gives an empty library.
func New(books []book.Book) *Library {
	owned := make([]book.Book, len(books))
	copy(owned, books)
	return &Library{books: owned}
}

// Len returns the number of books in the library.
func (l *Library) Len() int {
	return len(l.books)
}

// Books returns every book in insertion order.
func (l *Library) Books() View[book.Book] {
	return newView(l.books)
}

// BooksMatchSearchTerm returns the books whose author, title or publisher
// contains term, ignoring case. The term is literal text. An empty term
// matches every book.
func (l *Library) BooksMatchSearchTerm(term string) View[book.Book] {
	m := newMatcher(term)

	var matched []book.Book
	for _, b := range l.books {
		if m.containsAny(b.Author(), b.Title(), b.Publisher()) {
			matched = append(matched, b)
		}
	}
	return newView(matched)
}

// AuthorsMatchSearchTerm returns the distinct authors containing term,
// ignoring case, in the order they first appear.
func (l *Library) AuthorsMatchSearchTerm(term string) View[string] {
	m := newMatcher(term)

	seen := make(map[string]struct{})
	var authors []string
	for _, b := range l.books {
		author := b.Author()
		if _, ok := seen[author]; ok {
			continue
		}
		seen[author] = struct{}{}
		if m.contains(author) {
			authors = append(authors, author)
		}
	}
	return newView(authors)
}

// BooksMatchPredicate returns the books for which pred is true, in insertion order.
// The result is a new slice the caller may modify. A nil predicate matches nothing.
func (l *Library) BooksMatchPredicate(pred func(book.Book) bool) []book.Book {
	matched := []book.Book{}
	if pred == nil {
		return matched
	}
	for _, b := range l.books {
		if pred(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

// BookByID returns the first book with the given id, or book.NullObject() when there is none.
func (l *Library) BookByID(id int64) book.Book {
	for _, b := range l.books {
		if b.ID() == id {
			return b
		}
	}
	return book.NullObject()
}

func (l *Library) String() string {
	var sb strings.Builder
	for _, b := range l.books {
		sb.WriteString(b.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
