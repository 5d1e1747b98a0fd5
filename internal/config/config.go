// Package config provides the kscheck tool configuration file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"kickstart/internal/handler"
	"kickstart/internal/version"
)

// Config represents the kscheck.toml configuration file.
type Config struct {
	// Version is the kickstart syntax version to validate against,
	// e.g. "FC6" or "F24". Empty means the newest known release.
	Version string `toml:"version"`

	// IgnoreSections lists section tags (leading '%' included) that
	// should be tolerated and discarded instead of rejected.
	IgnoreSections []string `toml:"ignore_sections"`
}

// Load reads a Config from a TOML file.
func Load(filename string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(filename, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// ResolveVersion returns the configured syntax version, defaulting to the
// newest known release.
func (c *Config) ResolveVersion() (version.Version, error) {
	if c.Version == "" {
		return version.Devel, nil
	}
	return version.Parse(c.Version)
}

// Apply registers the configured null sections on a handler.
func (c *Config) Apply(h *handler.Handler) {
	for _, tag := range c.IgnoreSections {
		h.RegisterNull(tag)
	}
}
