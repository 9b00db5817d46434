package fileops

import (
	"os"

	"github.com/toyz/stubgen/internal/errors"
)

// DirPerm and FilePerm are the permissions used for generated output
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// FileOps is the single place that touches the file system for descriptions,
// generated units and configuration. Failures come back as IOErrors, except
// for an unusable destination directory which is a configuration problem.
// Reads are never cached so watch mode always sees the current contents.
type FileOps struct {
	paths *PathValidator
}

// NewFileOps creates a new FileOps instance
func NewFileOps() *FileOps {
	return &FileOps{paths: NewPathValidator()}
}

// Paths returns the validator used for every operation
func (fo *FileOps) Paths() *PathValidator {
	return fo.paths
}

// ReadFile reads an existing file
func (fo *FileOps) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fo.paths.Existing(filePath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", cleanPath, err)
	}
	return content, nil
}

// WriteFile writes content to a file, creating or truncating it. The parent
// directory must already exist.
func (fo *FileOps) WriteFile(filePath string, content []byte) error {
	cleanPath, err := fo.paths.Clean(filePath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cleanPath, content, FilePerm); err != nil {
		return errors.WrapFileSystemError("write", cleanPath, err)
	}
	return nil
}

// EnsureDir creates dirPath and any missing parents. A failure is reported
// as a destination error.
func (fo *FileOps) EnsureDir(dirPath string) error {
	cleanPath, err := fo.paths.Clean(dirPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cleanPath, DirPerm); err != nil {
		return errors.DestinationError(cleanPath, err)
	}

	// MkdirAll succeeds on an existing directory but not on a file
	if !fo.paths.IsDir(cleanPath) {
		return errors.DestinationError(cleanPath, os.ErrExist)
	}
	return nil
}

// RemoveFile removes an existing file
func (fo *FileOps) RemoveFile(filePath string) error {
	cleanPath, err := fo.paths.Existing(filePath)
	if err != nil {
		return err
	}

	if err := os.Remove(cleanPath); err != nil {
		return errors.WrapFileSystemError("remove", cleanPath, err)
	}
	return nil
}

// Exists reports whether anything exists at path
func (fo *FileOps) Exists(path string) bool {
	return fo.paths.Exists(path)
}

// IsDir reports whether path exists and is a directory
func (fo *FileOps) IsDir(path string) bool {
	return fo.paths.IsDir(path)
}
