package smtvar

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Backend names a solver backend.
type Backend string

const (
	// BackendSMTLib records declarations and prints them as SMT-LIB 2.
	BackendSMTLib Backend = "smtlib"
	// BackendZ3 declares symbols in a Z3 context.
	BackendZ3 Backend = "z3"
)

// Config specifies the (optional) parameters of an encoding run.
// Options are ignored when a field has the zero value.
type Config struct {
	// Package is the package path or .go file to encode.
	Package string `yaml:"package"`
	// FuncNames is a list of functions to encode. All functions of the
	// package are encoded when it is empty.
	FuncNames []string `yaml:"funcs"`
	// Backend selects the solver backend. Defaults to BackendSMTLib.
	Backend Backend `yaml:"backend"`
	// LogLevel is one of debug, info, error and disabled.
	LogLevel string `yaml:"logLevel"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	config := &Config{}
	if err := yaml.UnmarshalStrict(b, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}

// Validate checks the option values.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendSMTLib, BackendZ3:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

// Merge overrides the fields of c with the non-zero fields of o.
func (c *Config) Merge(o *Config) {
	if o.Package != "" {
		c.Package = o.Package
	}
	if len(o.FuncNames) > 0 {
		c.FuncNames = o.FuncNames
	}
	if o.Backend != "" {
		c.Backend = o.Backend
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}
