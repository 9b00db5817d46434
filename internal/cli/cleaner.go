package cli

import (
	"bytes"
	"strings"

	"github.com/toyz/stubgen/internal/models"
	"github.com/toyz/stubgen/internal/templates"
	"github.com/toyz/stubgen/internal/utils"
	"github.com/toyz/stubgen/internal/utils/fileops"
)

// Cleaner removes previously generated wrapper classes
type Cleaner struct {
	fileProcessor *utils.FileProcessor
	fileOps       *fileops.FileOps
	marker        []byte
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessor(),
		fileOps:       fileops.NewFileOps(),
		marker:        []byte(strings.TrimSpace(templates.Banner)),
	}
}

// CleanGeneratedFiles removes every .java file under the given directories
// that carries the generated banner. Hand-written classes are never touched.
// It returns the removed paths in scan order.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removed []string

	candidates, err := c.fileProcessor.CollectFiles(directories, utils.ExtensionFilter(models.SourceExtension))
	if err != nil {
		return nil, err
	}

	for _, path := range candidates {
		generated, err := c.isGenerated(path)
		if err != nil {
			return removed, err
		}
		if !generated {
			continue
		}

		if err := c.fileOps.RemoveFile(path); err != nil {
			return removed, err
		}
		removed = append(removed, path)
	}

	return removed, nil
}

func (c *Cleaner) isGenerated(path string) (bool, error) {
	content, err := c.fileOps.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Contains(content, c.marker), nil
}
