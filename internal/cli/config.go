package cli

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/generator"
	"github.com/toyz/stubgen/internal/parser"
	"github.com/toyz/stubgen/internal/utils"
)

const (
	// DefaultConfigFile is looked up in the working directory when no
	// --config flag is given
	DefaultConfigFile = "stubgen.yaml"
	// DefaultOutput is the destination used when neither the file nor the
	// flags name one
	DefaultOutput = "./jaxws"
)

// Config holds the configuration for a generation run
type Config struct {
	// Output is the directory the wrapper classes are written to
	Output string `yaml:"output" validate:"required"`

	// Services lists description files or directories; "dir/..." recurses
	Services []string `yaml:"services" validate:"dive,required"`

	// OneWayMarkers replaces the default one-way annotations when set
	OneWayMarkers []string `yaml:"oneway_markers" validate:"dive,javaname"`

	// Strict fails the run when two units map to the same file
	Strict bool `yaml:"strict"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"-"`

	// Source is the configuration file the values came from, if any
	Source string `yaml:"-"`
}

// Overrides carries command-line values that take precedence over the file
type Overrides struct {
	Output   string
	Services []string
	Strict   bool
	Verbose  bool
}

// DefaultConfig returns the configuration used without a stubgen.yaml
func DefaultConfig() *Config {
	markers := make([]string, len(generator.DefaultOneWayMarkers))
	copy(markers, generator.DefaultOneWayMarkers)

	return &Config{
		Output:        DefaultOutput,
		OneWayMarkers: markers,
	}
}

// LoadConfig reads path, or DefaultConfigFile in the working directory
// when path is empty. A missing default file yields DefaultConfig; a
// missing explicit file is an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, errors.WrapConfigurationError(path, "read", err).
			WithSuggestion("Pass an existing file with --config")
	}

	return ParseConfig(path, data)
}

// ParseConfig decodes a stubgen.yaml document. Unknown keys are rejected;
// omitted keys keep their defaults.
func ParseConfig(path string, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Output = ""

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapConfigurationError(path, "parse", err).
			WithLocation(errors.SourceLocation{File: path})
	}
	if len(cfg.OneWayMarkers) == 0 {
		cfg.OneWayMarkers = DefaultConfig().OneWayMarkers
	}

	// service paths are relative to the configuration file
	base := filepath.Dir(path)
	for i, svc := range cfg.Services {
		if svc != "" && !filepath.IsAbs(svc) {
			cfg.Services[i] = relativeTo(base, svc)
		}
	}
	switch {
	case cfg.Output == "":
		cfg.Output = DefaultOutput
	case !filepath.IsAbs(cfg.Output):
		cfg.Output = filepath.Join(base, cfg.Output)
	}

	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// relativeTo joins a service target onto base. The recursive suffix is
// split off first since Join would clean "./..." down to "...".
func relativeTo(base, target string) string {
	if target == "..." {
		target = "." + utils.RecursiveSuffix
	}
	if dir, ok := strings.CutSuffix(target, utils.RecursiveSuffix); ok {
		return filepath.Join(base, dir) + utils.RecursiveSuffix
	}
	return filepath.Join(base, target)
}

// Apply layers command-line overrides on top of the configuration
func (c *Config) Apply(o Overrides) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if len(o.Services) > 0 {
		c.Services = o.Services
	}
	c.Strict = c.Strict || o.Strict
	c.Verbose = c.Verbose || o.Verbose
}

// Validate checks the configuration with the description validator
func (c *Config) Validate() error {
	if err := parser.NewValidator().Struct(c); err != nil {
		source := c.Source
		if source == "" {
			source = "flags"
		}
		return errors.Wrap(errors.ConfigurationErrorCode, "invalid configuration", parser.ValidationErrors(source, err)).
			WithLocation(errors.SourceLocation{File: c.Source})
	}
	return nil
}
