package cmdutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupExportPathsUsesOutputDir(t *testing.T) {
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("jsonoutputdir", filepath.Join(tempDir, "json"))

	cfg := &ExportConfig{Name: "library", WriteJSON: true, WriteYAML: true}
	require.NoError(t, SetupExportPaths(cfg))

	assert.Equal(t, filepath.Join(tempDir, "json", "library.json"), cfg.JSONOutput)
	assert.Equal(t, filepath.Join(tempDir, "json", "library.yaml"), cfg.YAMLOutput)
	assert.DirExists(t, filepath.Join(tempDir, "json"))
}

func TestSetupExportPathsKeepsExplicitPaths(t *testing.T) {
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("jsonoutputdir", filepath.Join(tempDir, "unused"))

	cfg := &ExportConfig{
		Name:       "library",
		WriteJSON:  true,
		JSONOutput: filepath.Join(tempDir, "out", "books.json"),
	}
	require.NoError(t, SetupExportPaths(cfg))

	assert.Equal(t, filepath.Join(tempDir, "out", "books.json"), cfg.JSONOutput)
	assert.Empty(t, cfg.YAMLOutput, "disabled outputs get no path")
	assert.DirExists(t, filepath.Join(tempDir, "out"))
	assert.NoDirExists(t, filepath.Join(tempDir, "unused"))
}

func TestSetupExportPathsSanitizesName(t *testing.T) {
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("jsonoutputdir", tempDir)

	cfg := &ExportConfig{Name: "books: fowler/beck", WriteJSON: true}
	require.NoError(t, SetupExportPaths(cfg))

	assert.Equal(t, filepath.Join(tempDir, "books - fowler-beck.json"), cfg.JSONOutput)
}

func TestSetupExportPathsDefaultName(t *testing.T) {
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("jsonoutputdir", tempDir)

	cfg := &ExportConfig{WriteYAML: true}
	require.NoError(t, SetupExportPaths(cfg))

	assert.Equal(t, filepath.Join(tempDir, "library.yaml"), cfg.YAMLOutput)
}
