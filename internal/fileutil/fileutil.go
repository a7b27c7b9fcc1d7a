// Package fileutil writes export files to disk.
package fileutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SanitizeFilename cleans a filename by replacing problematic characters
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

// FileExists checks if a regular file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag.
// Returns true if the file was written, false if it was skipped.
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// WriteJSONFile writes data as indented JSON, respecting the overwrite flag.
func WriteJSONFile(data any, filePath string, overwrite bool) (bool, error) {
	return writeEncoded("JSON", data, filePath, overwrite, func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	})
}

// WriteYAMLFile writes data as YAML, respecting the overwrite flag.
func WriteYAMLFile(data any, filePath string, overwrite bool) (bool, error) {
	return writeEncoded("YAML", data, filePath, overwrite, yaml.Marshal)
}

func writeEncoded(kind string, data any, filePath string, overwrite bool, marshal func(any) ([]byte, error)) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info(kind+" file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	encoded, err := marshal(data)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	slog.Info("Writing "+kind+" file", "filename", filePath, "overwrite", overwrite)
	written, err := WriteFileWithOverwrite(filePath, encoded, 0644, true)
	if err != nil {
		return false, fmt.Errorf("failed to write %s file: %w", kind, err)
	}
	return written, nil
}
