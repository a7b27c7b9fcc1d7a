package config

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override config keys,
// e.g. LIBRIS_LIBRARY_CSVFILE for library.csvfile.
const EnvPrefix = "LIBRIS"

// Global configuration variables
var (
	// CSVFile is the library file the catalog is loaded from
	CSVFile string
	// Delimiter separates fields in the library file
	Delimiter rune = ','
	// OverwriteFiles controls whether existing export files are overwritten
	OverwriteFiles bool
)

// SetDefaults registers the default value of every config key.
func SetDefaults() {
	viper.SetDefault("library.csvfile", "library.csv")
	viper.SetDefault("library.delimiter", ",")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.mode", "local")
	viper.SetDefault("datasette.dbfile", "./libris.db")
}

// BindEnv loads a .env file when present and lets LIBRIS_* variables override config keys.
func BindEnv(envFiles ...string) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			slog.Debug("Loaded environment file", "file", f)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	CSVFile = viper.GetString("library.csvfile")
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	SetDelimiter(viper.GetString("library.delimiter"))
}

// SetCSVFile sets the library file path
func SetCSVFile(path string) {
	CSVFile = path
}

// SetDelimiter sets the field delimiter from its first rune.
// Empty or invalid input keeps the current delimiter; `\t` selects a tab.
func SetDelimiter(value string) {
	if value == `\t` {
		Delimiter = '\t'
		return
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return
	}
	Delimiter = r
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
