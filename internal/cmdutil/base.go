package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/libris/internal/fileutil"
	"github.com/spf13/viper"
)

// ExportConfig holds the output settings of an export run
type ExportConfig struct {
	// Name is the base file name of the export, without extension
	Name       string
	WriteJSON  bool
	JSONOutput string
	WriteYAML  bool
	YAMLOutput string
}

// SetupExportPaths fills in default output paths and creates their directories.
// Files without an explicit path go to jsonoutputdir as <Name>.json / <Name>.yaml.
func SetupExportPaths(cfg *ExportConfig) error {
	baseDir := viper.GetString("jsonoutputdir")
	if baseDir == "" {
		baseDir = "json"
	}

	name := fileutil.SanitizeFilename(cfg.Name)
	if name == "" {
		name = "library"
	}

	if cfg.WriteJSON && cfg.JSONOutput == "" {
		cfg.JSONOutput = filepath.Clean(filepath.Join(baseDir, name+".json"))
	}
	if cfg.WriteYAML && cfg.YAMLOutput == "" {
		cfg.YAMLOutput = filepath.Clean(filepath.Join(baseDir, name+".yaml"))
	}

	for _, out := range []struct {
		enabled bool
		path    string
	}{
		{cfg.WriteJSON, cfg.JSONOutput},
		{cfg.WriteYAML, cfg.YAMLOutput},
	} {
		if !out.enabled {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(out.path), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return nil
}
