package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lepinkainen/libris/internal/book"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var summaryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("247")).
	Faint(true)

var bookColumns = []string{"ID", "TITLE", "AUTHOR", "ISBN", "PUBLISHER", "LANGUAGE", "YEAR"}

func writeBooks(w io.Writer, format string, books []book.Book) error {
	switch format {
	case formatJSON:
		return writeJSON(w, book.Records(books))
	case formatYAML:
		return writeYAML(w, book.Records(books))
	}

	rows := make([][]string, len(books))
	for i, b := range books {
		rows[i] = []string{
			fmt.Sprint(b.ID()),
			b.Title(),
			b.Author(),
			b.ISBN(),
			b.Publisher(),
			b.Language().String(),
			fmt.Sprint(b.YearOfPublication()),
		}
	}
	return writeTable(w, bookColumns, rows, fmt.Sprintf("%d books", len(books)))
}

func writeAuthors(w io.Writer, format string, authors []string) error {
	if authors == nil {
		authors = []string{}
	}
	switch format {
	case formatJSON:
		return writeJSON(w, authors)
	case formatYAML:
		return writeYAML(w, authors)
	}

	rows := make([][]string, len(authors))
	for i, a := range authors {
		rows[i] = []string{a}
	}
	return writeTable(w, []string{"AUTHOR"}, rows, fmt.Sprintf("%d authors", len(authors)))
}

// writeTable renders rows under header as a left-aligned table followed by
// a styled summary line.
func writeTable(w io.Writer, header []string, rows [][]string, summary string) error {
	align := make([]tw.Align, len(header))
	for i := range align {
		align[i] = tw.AlignLeft
	}

	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	headers := make([]any, len(header))
	for i, h := range header {
		headers[i] = h
	}
	table.Header(headers...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}
	return writeSummary(w, summary)
}

func writeSummary(w io.Writer, summary string) error {
	_, err := fmt.Fprintln(w, summaryStyle.Render(summary))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
