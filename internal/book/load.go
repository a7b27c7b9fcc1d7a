package book

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lepinkainen/libris/internal/csvutil"
)

type loadOptions struct {
	delimiter rune
}

// LoadOption configures Load and LoadFromFile.
type LoadOption func(*loadOptions)

// WithDelimiter sets the field delimiter of the library file. Zero keeps the default comma.
func WithDelimiter(r rune) LoadOption {
	return func(o *loadOptions) {
		o.delimiter = r
	}
}

// Load reads the books in the delimited file at path, in file order.
// Rows that are not book data or do not parse are skipped.
// A relative path is resolved against the current working directory.
func Load(path string, opts ...LoadOption) ([]Book, error) {
	options := loadOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	rejected := 0
	filter := func(fields []string) bool {
		if AcceptRow(fields) {
			return true
		}
		rejected++
		return false
	}
	parser := func(fields []string) (Book, error) {
		b, err := Parse(fields)
		if err != nil {
			rejected++
		}
		return b, err
	}

	books, err := csvutil.ProcessCSV(path, parser, csvutil.ProcessorOptions{
		Comma:       options.delimiter,
		Filter:      filter,
		SkipInvalid: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load books from %s: %w", path, err)
	}

	slog.Debug("Loaded library file", "path", path, "books", len(books), "rejected", rejected)
	return books, nil
}

// LoadFromFile is Load for callers that cannot handle a failure: the error is
// logged and nil is returned, which the catalog treats as empty.
func LoadFromFile(path string, opts ...LoadOption) []Book {
	books, err := Load(path, opts...)
	if err != nil {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		slog.Error("Failed to read library file", "path", abs, "error", err)
		return nil
	}
	return books
}
