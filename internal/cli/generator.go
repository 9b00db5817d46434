package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/generator"
	"github.com/toyz/stubgen/internal/models"
	"github.com/toyz/stubgen/internal/parser"
	"github.com/toyz/stubgen/internal/utils"
)

// GenerationSummary describes one generation run
type GenerationSummary struct {
	RunID             string
	ServicesProcessed int
	Methods           int
	Requests          int
	Responses         int
	ExceptionBeans    int
	Warnings          []models.Warning
	GeneratedFiles    []string // written paths in write order
	Elapsed           time.Duration
}

// Stats returns the summary as labelled values for DiagnosticSystem.Summary
func (s GenerationSummary) Stats() map[string]interface{} {
	return map[string]interface{}{
		"Services processed": s.ServicesProcessed,
		"Methods":            s.Methods,
		"Request wrappers":   s.Requests,
		"Response wrappers":  s.Responses,
		"Exception beans":    s.ExceptionBeans,
		"Files written":      len(s.GeneratedFiles),
		"Warnings":           len(s.Warnings),
		"Elapsed":            s.Elapsed.Round(time.Millisecond),
	}
}

// Generator coordinates the CLI generation process
type Generator struct {
	scanner     *DirectoryScanner
	parser      parser.ServiceParser
	cache       *utils.FileCache[*models.ServiceInterface]
	reporter    *DiagnosticReporter
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// NewGenerator creates a CLI generator reporting through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem, reporter *DiagnosticReporter) *Generator {
	return &Generator{
		scanner:     NewDirectoryScanner(),
		parser:      parser.NewParser(),
		cache:       utils.NewFileCache[*models.ServiceInterface](),
		reporter:    reporter,
		diagnostics: diagnostics,
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Scanner returns the scanner used to resolve service targets
func (g *Generator) Scanner() *DirectoryScanner {
	return g.scanner
}

// Run generates the wrappers of every service description named by cfg.
// Files written before a failure are kept and listed in the summary.
// Parsed descriptions are cached across runs while their files are unchanged.
func (g *Generator) Run(ctx context.Context, cfg *Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{RunID: uuid.NewString()}
	g.diagnostics.SetRunID(g.summary.RunID)
	defer func() {
		g.summary.Elapsed = time.Since(startTime)
	}()

	g.diagnostics.Verbose("Run %s started at %s", g.summary.RunID, startTime.Format("15:04:05"))
	g.diagnostics.Debug("Services: %v, output: %s", cfg.Services, cfg.Output)

	g.diagnostics.StartProgress("Scanning for service descriptions")
	if cfg.Source != "" {
		g.scanner.Exclude(cfg.Source)
	}
	files, err := g.scanner.ScanServices(cfg.Services)
	if err != nil {
		g.diagnostics.EndProgress("Scanning for service descriptions", false, "")
		return err
	}
	if len(files) == 0 {
		g.diagnostics.EndProgress("Scanning for service descriptions", false, "")
		return errors.ConfigurationError("services", fmt.Sprintf("no service descriptions found in %v", cfg.Services)).
			WithSuggestion("Description files end in .svc, .yaml or .yml").
			WithSuggestion("Use 'dir/...' to scan subdirectories")
	}
	g.diagnostics.EndProgress("Scanning for service descriptions", true, fmt.Sprintf("Found %d service descriptions", len(files)))

	stubs := generator.NewGeneratorWithOptions(generator.Options{
		OneWayMarkers: cfg.OneWayMarkers,
		Strict:        cfg.Strict,
	})

	g.diagnostics.PhaseHeader("Services")
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.GenerationErrorCode, "generation cancelled", err)
		}

		iface, err := g.load(file)
		if err != nil {
			return err
		}

		if g.diagnostics.Enabled(utils.DiagnosticVerbose) {
			g.diagnostics.SourcePath(file)
		}
		result, err := stubs.Generate(ctx, iface, cfg.Output)
		g.record(iface, result, err)
		if err != nil {
			return err
		}

		g.diagnostics.PhaseItem(fmt.Sprintf("%s (%d files)", iface.QualifiedName(), len(result.Files)))
	}

	return nil
}

// load parses a description file, reusing the cached result when unchanged
func (g *Generator) load(path string) (*models.ServiceInterface, error) {
	if iface, ok := g.cache.Get(path); ok {
		g.diagnostics.Debug("Reusing parsed %s", filepath.Base(path))
		return iface, nil
	}

	iface, err := g.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := g.cache.Set(path, iface); err != nil {
		g.diagnostics.Debug("Not caching %s: %v", path, err)
	}
	return iface, nil
}

// record folds one service result into the summary. Warnings are reported
// only for successful services; a failed run reports through its error.
func (g *Generator) record(iface *models.ServiceInterface, result *models.GenerationResult, err error) {
	if result == nil {
		return
	}

	g.summary.ServicesProcessed++
	g.summary.Methods += len(iface.Methods)
	g.summary.Requests += result.CountByKind(models.UnitRequest)
	g.summary.Responses += result.CountByKind(models.UnitResponse)
	g.summary.ExceptionBeans += result.CountByKind(models.UnitExceptionBean)
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, result.Files...)
	g.summary.Warnings = append(g.summary.Warnings, result.Warnings...)

	if g.diagnostics.Enabled(utils.DiagnosticVerbose) {
		g.diagnostics.Indent()
		for _, path := range result.Files {
			g.diagnostics.PhaseProgress("Writing " + filepath.Base(path))
		}
		g.diagnostics.Unindent()
	}
	if g.reporter != nil && err == nil {
		for _, w := range result.Warnings {
			g.reporter.ReportWarning(w)
		}
	}
}
