// SPDX-License-Identifier: MIT

// Package config loads costflow settings. A config file is optional; when
// present it is YAML (.yaml/.yml) or TOML (.toml), chosen by extension.
// Command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/costflow/report"
)

// DefaultFileNames are tried, in order, by Discover.
var DefaultFileNames = []string{"costflow.yaml", "costflow.yml", "costflow.toml"}

// ErrUnsupportedExtension is returned by Load for unknown file extensions.
var ErrUnsupportedExtension = errors.New("config: unsupported file extension")

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Server configures `costflow serve`. MaxVertices bounds the dense matrices
// a single request may allocate.
type Server struct {
	Addr          string        `yaml:"addr" toml:"addr"`
	ReadTimeout   time.Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout" toml:"write_timeout"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" toml:"max_body_bytes"`
	MaxConcurrent int           `yaml:"max_concurrent" toml:"max_concurrent"`
	MaxVertices   int           `yaml:"max_vertices" toml:"max_vertices"`
}

// Config is the full configuration model.
type Config struct {
	// Source is the source vertex (default 0).
	Source int `yaml:"source" toml:"source"`
	// Sink is the sink vertex; -1 selects vertexCount-1.
	Sink int `yaml:"sink" toml:"sink"`
	// Format is one of report.Formats().
	Format string `yaml:"format" toml:"format"`
	// CycleCheck runs the negative-cycle guard after every search.
	CycleCheck bool `yaml:"cycle_check" toml:"cycle_check"`
	// SkipInvalidEdges drops tuples with out-of-range endpoints instead of failing.
	SkipInvalidEdges bool `yaml:"skip_invalid_edges" toml:"skip_invalid_edges"`
	// Matrices adds cost/residual/flow matrices to the text report.
	Matrices bool `yaml:"matrices" toml:"matrices"`
	// LogLevel is a charmbracelet/log level name.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Files are solved in order when `solve` gets no arguments.
	Files []string `yaml:"files" toml:"files"`

	Server Server `yaml:"server" toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:   0,
		Sink:     -1,
		Format:   string(report.FormatText),
		LogLevel: "info",
		Server: Server{
			Addr:          ":8080",
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  30 * time.Second,
			MaxBodyBytes:  1 << 20,
			MaxConcurrent: 8,
			MaxVertices:   512,
		},
	}
}

// Load reads path over Default() and validates the result. Relative entries
// of Files are resolved against the config file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%s (%q): %w", path, ext, ErrUnsupportedExtension)
	}

	dir := filepath.Dir(path)
	for i, f := range cfg.Files {
		if !filepath.IsAbs(f) {
			cfg.Files[i] = filepath.Join(dir, f)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Discover returns the first DefaultFileNames entry present in dir, or "".
func Discover(dir string) string {
	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}

	return ""
}

// Validate rejects values no command can honor.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	if c.Source < 0 {
		return fmt.Errorf("source %d: %w", c.Source, ErrInvalid)
	}
	if c.Sink < -1 {
		return fmt.Errorf("sink %d: %w", c.Sink, ErrInvalid)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must be ≥ 0: %w", ErrInvalid)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes %d: %w", c.Server.MaxBodyBytes, ErrInvalid)
	}
	if c.Server.MaxConcurrent <= 0 {
		return fmt.Errorf("server.max_concurrent %d: %w", c.Server.MaxConcurrent, ErrInvalid)
	}
	if c.Server.MaxVertices <= 0 {
		return fmt.Errorf("server.max_vertices %d: %w", c.Server.MaxVertices, ErrInvalid)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (charmlog.Level, error) {
	return charmlog.ParseLevel(c.LogLevel)
}
