package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/utils"
)

const calcIDL = `package com.example.calc;

import javax.jws.Oneway;

public interface Calculator {
    int add(int a, int b) throws CalcException;

    @Oneway
    void ping();
}
`

const fleetYAML = `package: com.example.fleet
name: Fleet
imports: [java.util.List]
methods:
  - name: list
    returns: List<String>
`

type testRun struct {
	generator *Generator
	out       *bytes.Buffer
	warnings  *bytes.Buffer
}

func newTestRun(level utils.DiagnosticLevel) testRun {
	var out, errOut, warnings bytes.Buffer
	diagnostics := utils.NewDiagnosticSystem(level).SetOutput(&out, &errOut)
	return testRun{
		generator: NewGenerator(diagnostics, NewDiagnosticReporterTo(false, &warnings)),
		out:       &out,
		warnings:  &warnings,
	}
}

func TestGenerator_Run(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"services/calc.svc":        calcIDL,
		"services/fleet/fleet.yml": fleetYAML,
	})
	out := filepath.Join(root, "jaxws")

	run := newTestRun(utils.DiagnosticVerbose)
	cfg := DefaultConfig()
	cfg.Output = out
	cfg.Services = []string{filepath.Join(root, "services") + "/..."}

	require.NoError(t, run.generator.Run(context.Background(), cfg))

	summary := run.generator.GetSummary()
	_, err := uuid.Parse(summary.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.ServicesProcessed)
	assert.Equal(t, 3, summary.Methods)
	assert.Equal(t, 3, summary.Requests)
	assert.Equal(t, 2, summary.Responses)
	assert.Equal(t, 1, summary.ExceptionBeans)
	assert.Empty(t, summary.Warnings)

	var names []string
	for _, f := range summary.GeneratedFiles {
		names = append(names, filepath.Base(f))
		assert.FileExists(t, f)
	}
	assert.Equal(t, []string{"Add.java", "AddResponse.java", "CalcExceptionBean.java", "Ping.java", "List.java", "ListResponse.java"}, names)

	stats := summary.Stats()
	assert.Equal(t, 6, stats["Files written"])
	assert.Equal(t, 0, stats["Warnings"])

	output := run.out.String()
	assert.Contains(t, output, "Found 2 service descriptions")
	assert.Contains(t, output, "✓ com.example.calc.Calculator (4 files)")
	assert.Contains(t, output, "✏ Writing Add.java")
	assert.Contains(t, output, "Source Path: "+filepath.Join(root, "services", "calc.svc"))
}

func TestGenerator_RunReusesParsedDescriptions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"calc.svc": calcIDL})

	run := newTestRun(utils.DiagnosticDebug)
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(root, "out")
	cfg.Services = []string{root}

	require.NoError(t, run.generator.Run(context.Background(), cfg))
	first := run.generator.GetSummary().RunID
	assert.NotContains(t, run.out.String(), "Reusing parsed calc.svc")

	require.NoError(t, run.generator.Run(context.Background(), cfg))
	assert.Contains(t, run.out.String(), "Reusing parsed calc.svc")
	assert.NotEqual(t, first, run.generator.GetSummary().RunID)
	assert.Equal(t, 4, len(run.generator.GetSummary().GeneratedFiles), "summary is per run")
}

func TestGenerator_RunWarnings(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"calc.svc": `package a;

interface Calc {
    int add(int a);
    int add(String s);
}
`})

	t.Run("reported", func(t *testing.T) {
		run := newTestRun(utils.DiagnosticInfo)
		cfg := DefaultConfig()
		cfg.Output = filepath.Join(t.TempDir(), "out")
		cfg.Services = []string{root}

		require.NoError(t, run.generator.Run(context.Background(), cfg))
		assert.Len(t, run.generator.GetSummary().Warnings, 2)
		assert.Equal(t, 2, strings.Count(run.warnings.String(), "! "))
	})

	t.Run("strict", func(t *testing.T) {
		run := newTestRun(utils.DiagnosticInfo)
		cfg := DefaultConfig()
		cfg.Output = filepath.Join(t.TempDir(), "out")
		cfg.Services = []string{root}
		cfg.Strict = true

		err := run.generator.Run(context.Background(), cfg)
		require.Error(t, err)
		assert.Equal(t, errors.ValidationErrorCode, errors.CodeOf(err))
		assert.Empty(t, run.warnings.String(), "the error carries the warnings")
		assert.Empty(t, run.generator.GetSummary().GeneratedFiles)
	})
}

func TestGenerator_RunErrors(t *testing.T) {
	t.Run("no descriptions", func(t *testing.T) {
		run := newTestRun(utils.DiagnosticInfo)
		cfg := DefaultConfig()
		cfg.Services = []string{t.TempDir()}

		err := run.generator.Run(context.Background(), cfg)
		require.Error(t, err)
		assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
	})

	t.Run("syntax error stops before writing", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, map[string]string{
			"a.svc": calcIDL,
			"b.svc": "package b;\ninterface Broken {\n    int (;\n}\n",
		})
		out := filepath.Join(root, "out")

		run := newTestRun(utils.DiagnosticInfo)
		cfg := DefaultConfig()
		cfg.Output = out
		cfg.Services = []string{root}

		err := run.generator.Run(context.Background(), cfg)
		require.Error(t, err)
		assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))

		// a.svc came first and stays written
		assert.Len(t, run.generator.GetSummary().GeneratedFiles, 4)
		entries, err := os.ReadDir(out)
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})

	t.Run("cancelled", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, map[string]string{"calc.svc": calcIDL})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		run := newTestRun(utils.DiagnosticInfo)
		cfg := DefaultConfig()
		cfg.Output = filepath.Join(root, "out")
		cfg.Services = []string{root}

		err := run.generator.Run(ctx, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoDirExists(t, cfg.Output)
	})
}
