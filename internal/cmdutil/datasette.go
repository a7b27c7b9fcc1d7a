package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/libris/internal/datastore"
	"github.com/spf13/viper"
)

// DatabaseName is the Datasette database rows are written to.
const DatabaseName = "libris"

// newStore picks the datastore for the configured Datasette mode.
// Replaced in tests.
var newStore = func(mode string) (datastore.Store, error) {
	switch mode {
	case "", "local":
		return datastore.NewSQLiteStore(viper.GetString("datasette.dbfile")), nil
	case "remote":
		return datastore.NewDatasetteClient(
			viper.GetString("datasette.remote_url"),
			viper.GetString("datasette.api_token"),
		), nil
	default:
		return nil, fmt.Errorf("invalid Datasette mode: %s", mode)
	}
}

// WriteToDatastore writes items into table when Datasette output is enabled.
// label names the items in log messages.
func WriteToDatastore[T any](items []T, schema, table, label string, toMap func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	mode := viper.GetString("datasette.mode")
	slog.Info("Writing to Datasette", "items", label, "mode", mode)

	store, err := newStore(mode)
	if err != nil {
		return err
	}
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return err
	}

	records := make([]map[string]any, len(items))
	for i, item := range items {
		records[i] = toMap(item)
	}

	if err := store.BatchInsert(DatabaseName, table, records); err != nil {
		return fmt.Errorf("failed to write %s: %w", label, err)
	}

	slog.Info("Wrote records to Datasette", "items", label, "count", len(records), "table", table)
	return nil
}
