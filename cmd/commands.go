package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/lepinkainen/libris/internal/book"
	"github.com/lepinkainen/libris/internal/cmdutil"
	"github.com/lepinkainen/libris/internal/config"
	liberrors "github.com/lepinkainen/libris/internal/errors"
	"github.com/lepinkainen/libris/internal/fileutil"
	"github.com/lepinkainen/libris/internal/library"
	"github.com/spf13/viper"
)

// ListCmd lists every book
type ListCmd struct{}

// SearchCmd searches authors, titles and publishers
type SearchCmd struct {
	Term string `arg:"" optional:"" help:"Text to look for, case-insensitive. Empty matches every book."`
}

// AuthorsCmd lists matching authors
type AuthorsCmd struct {
	Term string `arg:"" optional:"" help:"Text to look for in author names, case-insensitive"`
}

// GetCmd looks up a single book
type GetCmd struct {
	ID int64 `arg:"" help:"Book id"`
}

// FilterCmd combines predicate helpers. Unset flags match everything.
type FilterCmd struct {
	Language  string `help:"Only books in this language (GERMAN, DUTCH or ENGLISH)"`
	Author    string `help:"Only books by this author, case-insensitive exact match"`
	Publisher string `help:"Only books whose publisher contains this text"`
	From      int16  `help:"Earliest year of publication (inclusive)"`
	To        int16  `help:"Latest year of publication (inclusive)"`
}

// ExportCmd writes the catalog out
type ExportCmd struct {
	JSON        bool   `help:"Write the catalog to a JSON file"`
	JSONOutput  string `help:"Path to JSON output file (defaults to json/library.json)"`
	YAML        bool   `help:"Write the catalog to a YAML file"`
	YAMLOutput  string `help:"Path to YAML output file (defaults to json/library.yaml)"`
	Datasette   bool   `help:"Write the catalog to Datasette (datasette.mode selects local or remote)"`
	DatasetteDB string `help:"Path to SQLite database file (overrides datasette.dbfile)"`
}

func (l *ListCmd) Run(g *Globals) error {
	return writeBooks(g.Out, g.Format, g.Library.Books().Slice())
}

func (s *SearchCmd) Run(g *Globals) error {
	return writeBooks(g.Out, g.Format, g.Library.BooksMatchSearchTerm(s.Term).Slice())
}

func (a *AuthorsCmd) Run(g *Globals) error {
	return writeAuthors(g.Out, g.Format, g.Library.AuthorsMatchSearchTerm(a.Term).Slice())
}

func (c *GetCmd) Run(g *Globals) error {
	b := g.Library.BookByID(c.ID)
	if err := writeBooks(g.Out, g.Format, []book.Book{b}); err != nil {
		return err
	}
	if b.IsNull() {
		return liberrors.NewNotFoundError(c.ID)
	}
	return nil
}

func (f *FilterCmd) Run(g *Globals) error {
	pred, err := f.predicate()
	if err != nil {
		return err
	}
	return writeBooks(g.Out, g.Format, g.Library.BooksMatchPredicate(pred))
}

func (f *FilterCmd) predicate() (library.Predicate, error) {
	var preds []library.Predicate

	if f.Language != "" {
		language, err := book.ParseLanguage(strings.ToUpper(f.Language))
		if err != nil {
			return nil, fmt.Errorf("invalid --language: %w", err)
		}
		preds = append(preds, library.ByLanguage(language))
	}
	if f.Author != "" {
		preds = append(preds, library.ByAuthor(f.Author))
	}
	if f.Publisher != "" {
		preds = append(preds, library.ByPublisher(f.Publisher))
	}
	if f.From != 0 || f.To != 0 {
		from, to := f.From, f.To
		if from == 0 {
			from = math.MinInt16
		}
		if to == 0 {
			to = math.MaxInt16
		}
		if from > to {
			return nil, fmt.Errorf("invalid year range: --from %d is after --to %d", from, to)
		}
		preds = append(preds, library.PublishedBetween(from, to))
	}

	return library.AllOf(preds...), nil
}

func (e *ExportCmd) Run(g *Globals) error {
	if e.Datasette {
		viper.Set("datasette.enabled", true)
	}
	if e.DatasetteDB != "" {
		viper.Set("datasette.dbfile", e.DatasetteDB)
	}
	if !e.JSON && !e.YAML && !viper.GetBool("datasette.enabled") {
		return errors.New("nothing to export: use --json, --yaml or --datasette")
	}

	cfg := &cmdutil.ExportConfig{
		Name:       "library",
		WriteJSON:  e.JSON,
		JSONOutput: e.JSONOutput,
		WriteYAML:  e.YAML,
		YAMLOutput: e.YAMLOutput,
	}
	if err := cmdutil.SetupExportPaths(cfg); err != nil {
		return err
	}

	books := g.Library.Books().Slice()
	records := book.Records(books)

	if cfg.WriteJSON {
		if _, err := fileutil.WriteJSONFile(records, cfg.JSONOutput, config.OverwriteFiles); err != nil {
			return fmt.Errorf("failed to write JSON export: %w", err)
		}
	}
	if cfg.WriteYAML {
		if _, err := fileutil.WriteYAMLFile(records, cfg.YAMLOutput, config.OverwriteFiles); err != nil {
			return fmt.Errorf("failed to write YAML export: %w", err)
		}
	}
	if err := cmdutil.WriteBooksToDatastore(books); err != nil {
		return err
	}

	slog.Info("Export complete", "books", len(books))
	return writeSummary(g.Out, fmt.Sprintf("Exported %d books", len(books)))
}
