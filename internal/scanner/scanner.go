// Package scanner handles target directory enumeration for Renamer.
package scanner

import (
	"os"
	"path/filepath"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the target path does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// NotADirectory indicates the target path exists but is not a directory.
	NotADirectory ScanErrorType = "NOT_A_DIRECTORY"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents a fatal error that occurred while validating or
// reading the target directory. Any ScanError aborts the run before a plan
// is built.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	switch e.Type {
	case DirectoryNotFound:
		return "directory does not exist: " + e.Path
	case NotADirectory:
		return "path is not a directory: " + e.Path
	case PermissionDenied:
		return "directory is not readable: " + e.Path
	default:
		return string(e.Type) + ": " + e.Path
	}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Entry represents one file or subdirectory found directly inside the target
// directory at scan time.
type Entry struct {
	Name string // Name only
	Path string // Full path within the target directory
}

// Scan enumerates the direct entries of the given directory, without
// recursion and without filtering: subdirectories and hidden entries are
// included. The directory is read exactly once; callers must not expect a
// rescan to pick up later changes.
func Scan(directory string) ([]Entry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Type: DirectoryNotFound, Path: directory, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	if !info.IsDir() {
		return nil, &ScanError{Type: NotADirectory, Path: directory}
	}

	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(directory, de.Name()),
		})
	}

	return entries, nil
}
