package cli

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/parser"
	"github.com/toyz/stubgen/internal/utils"
	"github.com/toyz/stubgen/internal/utils/fileops"
)

// DirectoryScanner finds service description files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
	fileOps       *fileops.FileOps
	extensions    utils.FileFilter
	excluded      map[string]bool
}

// NewDirectoryScanner creates a scanner for .svc, .yaml and .yml files
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
		fileOps:       fileops.NewFileOps(),
		extensions:    utils.ExtensionFilter(parser.ExtService, parser.ExtYAML, parser.ExtYML),
		excluded:      make(map[string]bool),
	}
}

// Exclude keeps paths out of directory scans, typically the configuration
// file the run was loaded from
func (s *DirectoryScanner) Exclude(paths ...string) {
	for _, path := range paths {
		if abs, err := filepath.Abs(path); err == nil {
			s.excluded[abs] = true
		}
	}
}

// ScanServices resolves targets into absolute description file paths.
// Supports Go-style patterns like "./..." for recursive scanning.
// Directory scans skip excluded files, stubgen.yaml and YAML documents
// that are not service descriptions; files named explicitly are always
// returned.
func (s *DirectoryScanner) ScanServices(targets []string) ([]string, error) {
	return s.fileProcessor.CollectFiles(targets, s.accept)
}

func (s *DirectoryScanner) accept(path string, entry fs.DirEntry) bool {
	if !s.extensions(path, entry) || s.excluded[path] || entry.Name() == DefaultConfigFile {
		return false
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case parser.ExtYAML, parser.ExtYML:
		source, err := s.fileOps.ReadFile(path)
		if err != nil {
			return true
		}
		return parser.IsServiceYAML(source)
	}
	return true
}

// WatchDirectories returns the directories to observe for the given
// targets: a file's parent, a directory itself, and for "dir/..." every
// subdirectory the scan would visit. The result is sorted.
func (s *DirectoryScanner) WatchDirectories(targets []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	keep := utils.DefaultDirectoryFilter()
	for _, target := range targets {
		t, err := utils.ResolveTarget(target)
		if err != nil {
			return nil, err
		}

		switch {
		case !t.IsDir:
			add(filepath.Dir(t.Path))
		case !t.Recursive:
			add(t.Path)
		default:
			err := filepath.WalkDir(t.Path, func(path string, entry fs.DirEntry, err error) error {
				if err != nil || !entry.IsDir() {
					return err
				}
				if path != t.Path && !keep(path, entry) {
					return filepath.SkipDir
				}
				add(path)
				return nil
			})
			if err != nil {
				return nil, errors.WrapFileSystemError("walk", t.Path, err)
			}
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}
