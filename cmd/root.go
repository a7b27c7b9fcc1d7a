package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/libris/internal/book"
	"github.com/lepinkainen/libris/internal/config"
	"github.com/lepinkainen/libris/internal/library"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the libris application
type CLI struct {
	// Global flags
	File      string `short:"f" help:"Path to the library CSV file (defaults to library.csvfile in config)"`
	Delimiter string `help:"Field delimiter of the library file (defaults to library.delimiter in config)"`
	Format    string `help:"Output format" enum:"text,json,yaml" default:"text"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`
	Overwrite bool   `help:"Overwrite existing export files"`

	List    ListCmd    `cmd:"" help:"List every book in the catalog"`
	Search  SearchCmd  `cmd:"" help:"Find books whose author, title or publisher contains a term"`
	Authors AuthorsCmd `cmd:"" help:"List distinct authors whose name contains a term"`
	Get     GetCmd     `cmd:"" help:"Show the book with the given id"`
	Filter  FilterCmd  `cmd:"" help:"Find books by language, author, publisher and year"`
	Export  ExportCmd  `cmd:"" help:"Write the catalog to JSON, YAML or Datasette"`
}

// Globals is bound into every command's Run method.
type Globals struct {
	Library *library.Library
	Out     io.Writer
	Format  string
}

// Execute runs the Kong-based CLI
func Execute() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	options := append([]kong.Option{
		kong.Name("libris"),
		kong.Description("Query a book catalog loaded from a CSV library file."),
		kong.UsageOnError(),
	}, opts...)
	return kong.New(cli, options...)
}

func run(args []string, out io.Writer, opts ...kong.Option) error {
	var cli CLI
	parser, err := newParser(&cli, opts...)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	initLogging(cli.Verbose)
	if err := initConfig(); err != nil {
		return err
	}
	updateGlobalConfig(&cli)

	globals := &Globals{
		Library: loadLibrary(),
		Out:     out,
		Format:  cli.Format,
	}
	return ctx.Run(globals)
}

func initConfig() error {
	config.SetDefaults()
	config.BindEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Info("Config file not found, writing default config file...")
		if err := viper.SafeWriteConfig(); err != nil {
			slog.Warn("Error writing config file", "error", err)
		}
	}

	config.InitConfig()
	return nil
}

func updateGlobalConfig(cli *CLI) {
	if cli.File != "" {
		viper.Set("library.csvfile", cli.File)
		config.SetCSVFile(cli.File)
	}
	if cli.Delimiter != "" {
		viper.Set("library.delimiter", cli.Delimiter)
		config.SetDelimiter(cli.Delimiter)
	}
	if cli.Overwrite {
		viper.Set("OverwriteFiles", true)
		config.SetOverwriteFiles(true)
	}
}

// loadLibrary builds the catalog from the configured library file.
// An unreadable file yields an empty catalog.
func loadLibrary() *library.Library {
	books := book.LoadFromFile(config.CSVFile, book.WithDelimiter(config.Delimiter))
	slog.Debug("Catalog ready", "file", config.CSVFile, "books", len(books))
	return library.New(books)
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Stdout carries command output, so logs go to stderr
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
