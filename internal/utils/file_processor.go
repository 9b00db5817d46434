package utils

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/utils/fileops"
)

// RecursiveSuffix marks a path that is scanned with all its subdirectories
const RecursiveSuffix = "/..."

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	Recursive       bool
	SkipErrors      bool
}

// Target is one scan argument resolved against the working directory
type Target struct {
	Path      string // absolute, without RecursiveSuffix
	Recursive bool
	IsDir     bool
}

// ResolveTarget strips RecursiveSuffix from target and checks that the rest
// exists. "file/..." is rejected since only directories can recurse.
func ResolveTarget(target string) (Target, error) {
	if target == "..." {
		target = "." + RecursiveSuffix
	}
	base := strings.TrimSuffix(target, RecursiveSuffix)
	if base == "" {
		base = "."
	}

	paths := fileops.NewPathValidator()
	abs, err := paths.Absolute(base)
	if err != nil {
		return Target{}, err
	}
	if _, err := paths.Existing(abs); err != nil {
		return Target{}, err
	}

	t := Target{
		Path:      abs,
		Recursive: strings.HasSuffix(target, RecursiveSuffix),
		IsDir:     paths.IsDir(abs),
	}
	if t.Recursive && !t.IsDir {
		return Target{}, errors.ConfigurationError("paths", target+" is a file and cannot be scanned recursively")
	}
	return t, nil
}

// FileProcessor walks directory trees and selects files with filters
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// ExtensionFilter accepts regular files whose extension is one of exts,
// compared case-insensitively
func ExtensionFilter(exts ...string) FileFilter {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	return func(path string, info fs.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return allowed[strings.ToLower(filepath.Ext(info.Name()))]
	}
}

// DefaultDirectoryFilter skips directories that never hold service descriptions
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, info fs.DirEntry) bool {
		name := info.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// WalkFiles returns the files under rootDir accepted by the options' file
// filter, sorted by path. Without Recursive only rootDir itself is read.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matched []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path == rootDir {
				return nil
			}
			if !options.Recursive {
				return filepath.SkipDir
			}
			if options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("walk", rootDir, err)
	}

	sort.Strings(matched)
	return matched, nil
}

// CollectFiles resolves each target to absolute file paths. A target is a
// file, a directory, or a directory followed by "/..." for a recursive scan.
// Explicitly named files bypass the filter. Results keep target order and
// contain no duplicates.
func (fp *FileProcessor) CollectFiles(targets []string, filter FileFilter) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(paths ...string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
		}
	}

	for _, target := range targets {
		t, err := ResolveTarget(target)
		if err != nil {
			return nil, err
		}

		if !t.IsDir {
			add(t.Path)
			continue
		}

		found, err := fp.WalkFiles(t.Path, FileWalkOptions{
			FileFilter:      filter,
			DirectoryFilter: DefaultDirectoryFilter(),
			Recursive:       t.Recursive,
		})
		if err != nil {
			return nil, err
		}
		add(found...)
	}

	return files, nil
}
