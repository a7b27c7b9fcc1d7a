package library

import "github.com/lepinkainen/libris/internal/book"

// Predicate selects books for BooksMatchPredicate.
type Predicate = func(book.Book) bool

// ByLanguage matches books written in language.
func ByLanguage(language book.Language) Predicate {
	return func(b book.Book) bool {
		return b.Language() == language
	}
}

// ByAuthor matches books whose author equals name, ignoring case.
func ByAuthor(name string) Predicate {
	return func(b book.Book) bool {
		return equalFold(b.Author(), name)
	}
}

// ByPublisher matches books whose publisher contains term, ignoring case.
func ByPublisher(term string) Predicate {
	return func(b book.Book) bool {
		return newMatcher(term).contains(b.Publisher())
	}
}

// PublishedBetween matches books published in [from, to], both inclusive.
func PublishedBetween(from, to int16) Predicate {
	return func(b book.Book) bool {
		year := b.YearOfPublication()
		return year >= from && year <= to
	}
}

// AllOf matches books satisfying every predicate. With no predicates it matches everything.
func AllOf(preds ...Predicate) Predicate {
	return func(b book.Book) bool {
		for _, p := range preds {
			if !p(b) {
				return false
			}
		}
		return true
	}
}
