// Package fileutils provides the file operations of a conversion run: input
// and output streams (with "-" for stdin/stdout) and charset decoding.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/csv-ofx/internal/models"
)

// StdioPath selects stdin as input or stdout as output.
const StdioPath = "-"

// IsStdio reports whether path designates stdin/stdout.
func IsStdio(path string) bool {
	return path == StdioPath
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// OpenInput opens a file for reading. "-" returns stdin, which Close leaves
// open.
func OpenInput(path string) (io.ReadCloser, error) {
	if IsStdio(path) {
		return io.NopCloser(os.Stdin), nil
	}
	if !FileExists(path) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// CreateOutput creates or truncates a file for writing, creating parent
// directories as needed. "-" returns stdout, which Close leaves open.
func CreateOutput(path string) (io.WriteCloser, error) {
	if IsStdio(path) {
		return nopWriteCloser{os.Stdout}, nil
	}

	if err := EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, models.PermissionOutputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
