package testutil

import (
	"testing"

	"github.com/lepinkainen/libris/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	CSVFile        string
	Delimiter      rune
	OverwriteFiles bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		CSVFile:        config.CSVFile,
		Delimiter:      config.Delimiter,
		OverwriteFiles: config.OverwriteFiles,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.CSVFile = state.CSVFile
	config.Delimiter = state.Delimiter
	config.OverwriteFiles = state.OverwriteFiles
}

// ResetConfig saves the current config state, resets viper, and restores
// both when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig resets config and points it at a library file inside env.
func SetTestConfig(t *testing.T, env *TestEnv, csvFile string) {
	t.Helper()

	ResetConfig(t)
	config.SetDefaults()
	config.CSVFile = env.Path(csvFile)
	config.Delimiter = ','
	config.OverwriteFiles = true
	viper.Set("jsonoutputdir", env.Path("json"))
}

// SetupDatasetteDB enables local Datasette export into a database inside env.
// Returns the database path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")
	viper.Set("datasette.enabled", true)
	viper.Set("datasette.mode", "local")
	viper.Set("datasette.dbfile", dbPath)

	return dbPath
}
