package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ProcessorOptions configures CSV processing behavior.
type ProcessorOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// Filter decides whether a record reaches the parser. Rejected records
	// are skipped. A nil Filter accepts everything.
	Filter func([]string) bool

	// SkipInvalid controls whether to skip invalid records or return an error.
	SkipInvalid bool
}

// ProcessCSV reads a CSV file and parses each accepted record into type T.
// The parser function converts a CSV record ([]string) into the target type.
// Returns the parsed items in file order or an error.
func ProcessCSV[T any](filename string, parser func([]string) (T, error), opts ProcessorOptions) ([]T, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = csvFile.Close() }()

	return ProcessReader(csvFile, parser, opts)
}

// ProcessReader is ProcessCSV over an already opened source.
func ProcessReader[T any](r io.Reader, parser func([]string) (T, error), opts ProcessorOptions) ([]T, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	// Rows may carry any number of fields; Filter decides what is usable
	reader.FieldsPerRecord = -1

	var items []T

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Error reading record", "error", err)
			continue
		}

		if opts.Filter != nil && !opts.Filter(record) {
			slog.Debug("Skipping rejected record", "fields", len(record))
			continue
		}

		item, err := parser(record)
		if err != nil {
			if opts.SkipInvalid {
				slog.Debug("Skipping invalid record", "error", err)
				continue
			}
			return nil, fmt.Errorf("invalid record: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
