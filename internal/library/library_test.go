package library

import (
	"slices"
	"testing"

	"github.com/lepinkainen/libris/internal/book"
	liberrors "github.com/lepinkainen/libris/internal/errors"
	"github.com/lepinkainen/libris/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioBooks() []book.Book {
	return []book.Book{
		book.New(1, "A", "Martin Fowler", "i1", "p1", book.English, 2000),
		book.New(2, "B", "Robert C. Martin", "i2", "p2", book.English, 2001),
	}
}

// loadTestLibrary builds a library from the shared fixture file, the way the CLI does.
func loadTestLibrary(t *testing.T) (*Library, []book.Book) {
	t.Helper()

	env := testutil.NewTestEnv(t)

	books, err := book.Load(env.WriteLibrary("library.csv"))
	require.NoError(t, err)
	require.Len(t, books, 6)

	return New(books), books
}

func bookIDs(books []book.Book) []int64 {
	out := make([]int64, len(books))
	for i, b := range books {
		out[i] = b.ID()
	}
	return out
}

func TestScenario(t *testing.T) {
	lib := New(scenarioBooks())

	matched := lib.BooksMatchSearchTerm("martin")
	assert.Equal(t, []int64{1, 2}, bookIDs(matched.Slice()))

	assert.Equal(t, int64(2), lib.BookByID(2).ID())
	assert.Equal(t, "B", lib.BookByID(2).Title())

	miss := lib.BookByID(99)
	assert.Equal(t, int64(0), miss.ID())
	assert.True(t, miss.IsNull())

	assert.Equal(t, []string{"Martin Fowler"}, lib.AuthorsMatchSearchTerm("Martin Fowler").Slice())
}

func TestNewWithAbsentInput(t *testing.T) {
	for name, input := range map[string][]book.Book{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			lib := New(input)

			assert.Equal(t, 0, lib.Len())
			assert.Equal(t, 0, lib.Books().Len())
			assert.Equal(t, 0, lib.BooksMatchSearchTerm("").Len())
			assert.Equal(t, 0, lib.AuthorsMatchSearchTerm("").Len())
			assert.Empty(t, lib.BooksMatchPredicate(func(book.Book) bool { return true }))
			assert.True(t, lib.BookByID(1).IsNull())
			assert.Empty(t, lib.String())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	books := scenarioBooks()
	lib := New(books)

	books[0] = book.New(42, "replaced", "", "", "", book.Dutch, 0)

	assert.Equal(t, int64(1), lib.Books().At(0).ID())
}

func TestBooksKeepsInsertionOrder(t *testing.T) {
	lib, books := loadTestLibrary(t)

	view := lib.Books()

	require.Equal(t, len(books), view.Len())
	assert.Equal(t, books, view.Slice())
	for i, b := range view.All() {
		assert.True(t, books[i].Equal(b))
	}
	assert.Equal(t, books, slices.Collect(view.Values()))
}

func TestBooksIsUnmodifiable(t *testing.T) {
	lib, books := loadTestLibrary(t)
	view := lib.Books()

	tests := []struct {
		name string
		op   string
		fn   func() error
	}{
		{"remove", "remove", func() error { return view.Remove(0) }},
		{"append", "append", func() error { return view.Append(book.NullObject()) }},
		{"insert", "insert", func() error { return view.Insert(0, book.NullObject()) }},
		{"set", "set", func() error { return view.Set(0, book.NullObject()) }},
		{"clear", "clear", func() error { return view.Clear() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, liberrors.ErrUnsupportedOperation)
			assert.True(t, liberrors.IsUnsupportedOperation(err))

			var opErr *liberrors.UnsupportedOperationError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, tt.op, opErr.Op)
		})
	}

	assert.Equal(t, books, lib.Books().Slice())
}

func TestSliceIsDetached(t *testing.T) {
	lib := New(scenarioBooks())

	s := lib.Books().Slice()
	s[0] = book.NullObject()

	assert.Equal(t, int64(1), lib.Books().At(0).ID())
}

func TestBooksMatchSearchTerm(t *testing.T) {
	lib, _ := loadTestLibrary(t)

	tests := []struct {
		name string
		term string
		want []int64
	}{
		{"author exact", "Martin Fowler", []int64{2, 7}},
		{"author lower case", "martin fowler", []int64{2, 7}},
		{"author fragment", "martin", []int64{2, 3, 7}},
		{"title fragment upper case", "PATTERNS", []int64{1, 7}},
		{"publisher", "addison", []int64{2, 4, 7}},
		{"empty term matches all", "", []int64{1, 2, 3, 4, 7, 8}},
		{"no match", "tolkien", []int64{}},
		{"isbn is not searched", "9780201485677", []int64{}},
		{"pattern characters are literal", "Fowl.r", []int64{}},
		{"wildcard is literal", ".*", []int64{}},
		{"dot matches literal dot", "C. Martin", []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.BooksMatchSearchTerm(tt.term)
			assert.Equal(t, tt.want, bookIDs(got.Slice()))
		})
	}
}

func TestBooksMatchSearchTermEveryFieldSubstring(t *testing.T) {
	lib, books := loadTestLibrary(t)

	for _, b := range books {
		for _, field := range []string{b.Author(), b.Title(), b.Publisher()} {
			for _, term := range []string{field, field[:len(field)/2], field[len(field)/2:]} {
				got := lib.BooksMatchSearchTerm(term)
				assert.GreaterOrEqual(t, got.IndexFunc(b.Equal), 0, "term %q should find book %d", term, b.ID())
			}
		}
	}
}

func TestBooksMatchSearchTermUnicodeFolding(t *testing.T) {
	lib := New([]book.Book{
		book.New(1, "Straße der Ölsucher", "Jürgen Müller", "i1", "Verlag", book.German, 1970),
	})

	assert.Equal(t, 1, lib.BooksMatchSearchTerm("STRAßE DER").Len())
	assert.Equal(t, 1, lib.BooksMatchSearchTerm("jÜrgen").Len())
	assert.Equal(t, 1, lib.BooksMatchSearchTerm("ölsucher").Len())
}

func TestAuthorsMatchSearchTerm(t *testing.T) {
	lib, _ := loadTestLibrary(t)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"full name", "Robert C. Martin", []string{"Robert C. Martin"}},
		{"deduplicated", "fowler", []string{"Martin Fowler"}},
		{"first occurrence order", "martin", []string{"Martin Fowler", "Robert C. Martin"}},
		{"empty term", "", []string{"Eric Freeman", "Martin Fowler", "Robert C. Martin", "Brian Goetz", "Franz Kafka"}},
		{"no match", "tolkien", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lib.AuthorsMatchSearchTerm(tt.term).Slice())
		})
	}
}

func TestAuthorsAreNeverRepeated(t *testing.T) {
	lib, _ := loadTestLibrary(t)

	authors := lib.AuthorsMatchSearchTerm("").Slice()
	seen := map[string]bool{}
	for _, a := range authors {
		assert.False(t, seen[a], "author %q returned twice", a)
		seen[a] = true
	}
}

func TestAuthorsViewIsUnmodifiable(t *testing.T) {
	lib := New(scenarioBooks())

	err := lib.AuthorsMatchSearchTerm("").Remove(0)
	assert.ErrorIs(t, err, liberrors.ErrUnsupportedOperation)
}

func TestBooksMatchPredicate(t *testing.T) {
	lib, books := loadTestLibrary(t)

	t.Run("author equals", func(t *testing.T) {
		got := lib.BooksMatchPredicate(func(b book.Book) bool { return b.Author() == "Brian Goetz" })
		assert.Equal(t, []book.Book{books[3]}, got)
	})

	t.Run("exact ordered subset", func(t *testing.T) {
		pred := func(b book.Book) bool { return b.ID()%2 == 0 }
		var want []book.Book
		for _, b := range books {
			if pred(b) {
				want = append(want, b)
			}
		}
		assert.Equal(t, want, lib.BooksMatchPredicate(pred))
	})

	t.Run("none", func(t *testing.T) {
		got := lib.BooksMatchPredicate(func(book.Book) bool { return false })
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nil predicate", func(t *testing.T) {
		assert.Empty(t, lib.BooksMatchPredicate(nil))
	})

	t.Run("result does not alias catalog", func(t *testing.T) {
		got := lib.BooksMatchPredicate(func(book.Book) bool { return true })
		got[0] = book.NullObject()
		assert.Equal(t, int64(1), lib.Books().At(0).ID())
	})
}

func TestBookByID(t *testing.T) {
	lib, books := loadTestLibrary(t)

	tests := []struct {
		id    int64
		title string
	}{
		{1, "Head First Design Patterns"},
		{4, "Java Concurrency in Practice"},
		{8, "Der Prozess"},
	}

	for _, tt := range tests {
		got := lib.BookByID(tt.id)
		assert.Equal(t, tt.title, got.Title())
		assert.Contains(t, books, got)
	}

	for _, id := range []int64{0, 5, 6, 99, -1} {
		assert.Equal(t, book.NullObject(), lib.BookByID(id), "id %d", id)
	}
}

func TestBookByIDReturnsFirstMatch(t *testing.T) {
	lib := New([]book.Book{
		book.New(1, "first", "", "", "", book.English, 0),
		book.New(1, "second", "", "", "", book.English, 0),
	})

	assert.Equal(t, "first", lib.BookByID(1).Title())
}

func TestString(t *testing.T) {
	lib := New(scenarioBooks())

	want := scenarioBooks()[0].String() + "\n" + scenarioBooks()[1].String() + "\n"
	assert.Equal(t, want, lib.String())
}
