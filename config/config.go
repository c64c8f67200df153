// Package config holds the dataset catalogue and CLI defaults, loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrDatasetNotFound indicates a Lookup for a name the catalogue lacks.
	ErrDatasetNotFound = errors.New("config: dataset not found")

	// ErrDuplicateDataset indicates two catalogue entries sharing a name.
	ErrDuplicateDataset = errors.New("config: duplicate dataset name")

	// ErrInvalidDataset indicates an entry without a name or an edge file.
	ErrInvalidDataset = errors.New("config: invalid dataset")

	// ErrInvalidLogLevel indicates a log level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// Dataset is one graph the CLI can load by name.
type Dataset struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title,omitempty"`
	Group    string `yaml:"group,omitempty"`
	Edges    string `yaml:"edges"`
	Nodes    string `yaml:"nodes,omitempty"`
	Shipping bool   `yaml:"shipping,omitempty"`
}

// Label returns Title, or Name when no title is set.
func (d Dataset) Label() string {
	if d.Title != "" {
		return d.Title
	}

	return d.Name
}

// Config is the top-level configuration file.
type Config struct {
	// DataDir is prepended to relative dataset paths.
	DataDir string `yaml:"data_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string    `yaml:"log_level"`
	Datasets []Dataset `yaml:"datasets"`
}

// Validate checks the log level and that dataset names are unique and
// every dataset names an edge file.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	seen := make(map[string]struct{}, len(c.Datasets))
	for i, d := range c.Datasets {
		if d.Name == "" || d.Edges == "" {
			return fmt.Errorf("datasets[%d]: %w", i, ErrInvalidDataset)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("datasets[%d] %q: %w", i, d.Name, ErrDuplicateDataset)
		}
		seen[d.Name] = struct{}{}
	}

	return nil
}

// Lookup returns the dataset called name.
func (c *Config) Lookup(name string) (Dataset, error) {
	for _, d := range c.Datasets {
		if d.Name == name {
			return d, nil
		}
	}

	return Dataset{}, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
}

// Resolve returns d with relative Edges and Nodes joined onto DataDir.
func (c *Config) Resolve(d Dataset) Dataset {
	d.Edges = c.join(d.Edges)
	if d.Nodes != "" {
		d.Nodes = c.join(d.Nodes)
	}

	return d
}

func (c *Config) join(p string) string {
	if c.DataDir == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.DataDir, p)
}

// Groups returns the group names in order of first appearance.
// Datasets without a group are collected under "other".
func (c *Config) Groups() []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range c.Datasets {
		g := groupOf(d)
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}

	return out
}

// InGroup returns the datasets of group, in catalogue order.
func (c *Config) InGroup(group string) []Dataset {
	var out []Dataset
	for _, d := range c.Datasets {
		if groupOf(d) == group {
			out = append(out, d)
		}
	}

	return out
}

func groupOf(d Dataset) string {
	if d.Group == "" {
		return "other"
	}

	return d.Group
}
