package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/stubgen/internal/errors"
)

// PathValidator cleans the paths handed to FileOps and rejects ones that
// climb out of their base after a named component
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// Clean validates and cleans path without requiring it to exist. Leading
// ".." components are allowed since the CLI resolves paths relative to the
// working directory or the configuration file; ".." after a named
// component is not.
func (pv *PathValidator) Clean(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.FileSystemErrorCode, "file path cannot be empty")
	}

	named := false
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		switch part {
		case "", ".":
		case "..":
			if named {
				return "", errors.Newf(errors.FileSystemErrorCode, "path traversal not allowed in file path: %s", path).
					WithContext("path", path)
			}
		default:
			named = true
		}
	}

	return filepath.Clean(path), nil
}

// Existing is Clean plus a check that the path exists
func (pv *PathValidator) Existing(path string) (string, error) {
	cleanPath, err := pv.Clean(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(cleanPath); err != nil {
		return "", errors.WrapFileSystemError("stat", cleanPath, err).
			WithSuggestion("Check that the path exists")
	}
	return cleanPath, nil
}

// Absolute cleans path and resolves it against the working directory
func (pv *PathValidator) Absolute(path string) (string, error) {
	cleanPath, err := pv.Clean(path)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", cleanPath, err)
	}
	return absPath, nil
}

// Exists reports whether anything exists at path
func (pv *PathValidator) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
