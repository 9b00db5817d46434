package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/generator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, generator.DefaultOneWayMarkers, cfg.OneWayMarkers)
	assert.False(t, cfg.Strict)

	// the defaults are copied, not shared
	cfg.OneWayMarkers[0] = "changed"
	assert.Equal(t, "javax.jws.Oneway", generator.DefaultOneWayMarkers[0])
}

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)

	cfg, err := ParseConfig(path, []byte(`
output: generated
services: [api/..., /abs/calc.svc]
oneway_markers: [com.acme.FireAndForget]
strict: true
`))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "generated"), cfg.Output)
	assert.Equal(t, []string{filepath.Join(dir, "api") + "/...", "/abs/calc.svc"}, cfg.Services)
	assert.Equal(t, []string{"com.acme.FireAndForget"}, cfg.OneWayMarkers)
	assert.True(t, cfg.Strict)
	assert.Equal(t, path, cfg.Source)
}

func TestParseConfigServicePaths(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		services string
		expected []string
	}{
		{
			name:     "recursive in working directory",
			path:     DefaultConfigFile,
			services: "[./...]",
			expected: []string{"./..."},
		},
		{
			name:     "bare recursive marker",
			path:     DefaultConfigFile,
			services: "[...]",
			expected: []string{"./..."},
		},
		{
			name:     "recursive next to config",
			path:     filepath.Join("build", DefaultConfigFile),
			services: "[./..., ../api/..., calc.svc]",
			expected: []string{"build/...", "api/...", filepath.Join("build", "calc.svc")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.path, []byte("services: "+tt.services+"\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Services)
		})
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("stubgen.yaml", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, generator.DefaultOneWayMarkers, cfg.OneWayMarkers)
	assert.Empty(t, cfg.Services)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "unknown key",
			input:    "outptu: x\n",
			contains: "outptu",
		},
		{
			name:     "bad marker",
			input:    "oneway_markers: [\"not a name\"]\n",
			contains: "a dotted Java name",
		},
		{
			name:     "empty service entry",
			input:    "services: [\"\"]\n",
			contains: "Services[0]",
		},
		{
			name:     "not a mapping",
			input:    "- output\n",
			contains: "failed to parse configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("stubgen.yaml", []byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing default file", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("default file in working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("strict: true\n"), 0644))
		chdir(t, dir)

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
		assert.Equal(t, DefaultConfigFile, cfg.Source)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "custom.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
	})
}

func TestConfigApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Services = []string{"from-file"}

	cfg.Apply(Overrides{})
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, []string{"from-file"}, cfg.Services)

	cfg.Apply(Overrides{Output: "out", Services: []string{"a.svc"}, Strict: true, Verbose: true})
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, []string{"a.svc"}, cfg.Services)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())

	cfg.Output = ""
	assert.Error(t, cfg.Validate())
}
