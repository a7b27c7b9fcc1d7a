// Package datastore persists exported catalog rows, either into a local
// SQLite file or into a remote Datasette instance.
package datastore

// Store is implemented by every export destination.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert upserts rows into the given table. Rows with the same
	// primary key replace earlier ones, so repeated exports are idempotent.
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
