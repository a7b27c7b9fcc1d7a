package book

import (
	"errors"
	"strconv"

	liberrors "github.com/lepinkainen/libris/internal/errors"
)

// MinFields is the number of positional fields a book row carries:
// id, title, author, isbn, publisher, language, year.
const MinFields = 7

var errTooFewFields = errors.New("too few fields")

// Parse builds a Book from a row of fields. Fields beyond MinFields are ignored.
func Parse(fields []string) (Book, error) {
	if len(fields) < MinFields {
		return Book{}, liberrors.NewParseError("row", strconv.Itoa(len(fields))+" fields", errTooFewFields)
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Book{}, liberrors.NewParseError("id", fields[0], err)
	}

	language, err := ParseLanguage(fields[5])
	if err != nil {
		return Book{}, liberrors.NewParseError("language", fields[5], err)
	}

	year, err := strconv.ParseInt(fields[6], 10, 16)
	if err != nil {
		return Book{}, liberrors.NewParseError("year", fields[6], err)
	}

	return New(id, fields[1], fields[2], fields[3], fields[4], language, int16(year)), nil
}

// AcceptRow reports whether a row looks like book data: enough fields and an
// id made only of ASCII digits. Header lines fail this check.
func AcceptRow(fields []string) bool {
	return len(fields) >= MinFields && isDigits(fields[0])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
