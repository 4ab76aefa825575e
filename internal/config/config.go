// Package config holds the settings shared by every compilation: worker
// count, severity overrides and the toolchain version requirement.
package config

import (
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/ember-lang/ember/internal/diag"
)

// Version is the toolchain version checked against Config.Requires.
const Version = "0.3.0"

// Config is the compiler configuration.
type Config struct {
	// Jobs bounds the number of files compiled concurrently.
	Jobs int
	// WarningsAsErrors promotes every warning without an explicit override.
	WarningsAsErrors bool
	// Severity overrides the severity of diagnostics by id.
	Severity map[string]diag.Severity
	// Requires is a semver constraint the toolchain version must satisfy.
	Requires string
	Verbose  bool
}

// Option configures a Config.
type Option func(*Config)

func WithJobs(n int) Option {
	return func(c *Config) {
		c.Jobs = n
	}
}

func WithWarningsAsErrors(on bool) Option {
	return func(c *Config) {
		c.WarningsAsErrors = on
	}
}

// WithSeverity overrides the severity of the diagnostic with the given id.
func WithSeverity(id string, sev diag.Severity) Option {
	return func(c *Config) {
		if c.Severity == nil {
			c.Severity = make(map[string]diag.Severity)
		}
		c.Severity[id] = sev
	}
}

func WithRequires(constraint string) Option {
	return func(c *Config) {
		c.Requires = constraint
	}
}

func WithVerbose(on bool) Option {
	return func(c *Config) {
		c.Verbose = on
	}
}

// New returns a Config with defaults applied before opts.
func New(opts ...Option) *Config {
	c := &Config{Jobs: runtime.NumCPU()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks the configuration against the running toolchain version.
func (c *Config) Validate(version string) error {
	if c.Jobs < 1 {
		return errors.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	for id, sev := range c.Severity {
		if _, ok := diag.Lookup(id); !ok {
			return errors.Errorf("unknown diagnostic %q", id)
		}
		if _, ok := diag.ParseSeverity(string(sev)); !ok {
			return errors.Errorf("invalid severity %q for %s", sev, id)
		}
	}

	if c.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return errors.Wrapf(err, "invalid version requirement %q", c.Requires)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "invalid toolchain version %q", version)
	}
	if !constraint.Check(v) {
		return errors.Errorf("toolchain %s does not satisfy %q", v, c.Requires)
	}
	return nil
}

// Policy returns the severity policy every pass reports through.
func (c *Config) Policy() *diag.Policy {
	if c == nil {
		return nil
	}
	return &diag.Policy{Overrides: c.Severity, WarningsAsErrors: c.WarningsAsErrors}
}

// ParseOverride parses a command-line override of the form "id=severity".
func ParseOverride(s string) (string, diag.Severity, error) {
	id, name, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", errors.Errorf("expected id=severity, got %q", s)
	}
	id = strings.TrimSpace(id)
	if _, ok := diag.Lookup(id); !ok {
		return "", "", errors.Errorf("unknown diagnostic %q", id)
	}
	sev, ok := diag.ParseSeverity(strings.TrimSpace(name))
	if !ok {
		return "", "", errors.Errorf("unknown severity %q", name)
	}
	return id, sev, nil
}
