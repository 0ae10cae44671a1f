package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/mdftrainer/internal/fileutil"
	"github.com/lox/mdftrainer/internal/scenario"
	"github.com/lox/mdftrainer/internal/store"
)

// FileName is the settings file inside the state directory.
const FileName = "settings.hcl"

// DefaultStateDir is where score and settings live unless overridden.
func DefaultStateDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "mdftrainer"), nil
}

// Config represents the complete trainer configuration. The drill block holds
// the last-used settings and is rewritten when a drill ends.
type Config struct {
	Drill DrillSettings `hcl:"drill,block"`
	Log   LogSettings   `hcl:"log,block"`
	Store StoreSettings `hcl:"store,block"`
}

// DrillSettings controls which scenarios are generated and how answers are
// judged.
type DrillSettings struct {
	Kind              string          `hcl:"kind,optional"`
	MinPot            float64         `hcl:"min_pot,optional"`
	MaxPot            float64         `hcl:"max_pot,optional"`
	FixedBetSize      int             `hcl:"fixed_bet_size,optional"`
	ExcludeOccasional bool            `hcl:"exclude_occasional,optional"`
	Tolerance         float64         `hcl:"tolerance,optional"`
	BetSizes          []BetSizeWeight `hcl:"bet_size,block"`
}

// BetSizeWeight is one entry of a custom bet-size table.
type BetSizeWeight struct {
	Percent int `hcl:"percent"`
	Weight  int `hcl:"weight"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// StoreSettings selects where the running score is kept.
type StoreSettings struct {
	Backend   string `hcl:"backend,optional"`
	RedisURL  string `hcl:"redis_url,optional"`
	KeyPrefix string `hcl:"key_prefix,optional"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Drill: DrillSettings{
			Kind:      string(scenario.Random),
			MinPot:    scenario.DefaultMinPot,
			MaxPot:    scenario.DefaultMaxPot,
			Tolerance: scenario.DefaultTolerance,
		},
		Log: LogSettings{
			Level: "info",
			File:  "mdftrainer.log",
		},
		Store: StoreSettings{
			Backend:   store.BackendFile,
			KeyPrefix: store.DefaultKeyPrefix,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Drill.Kind == "" {
		c.Drill.Kind = defaults.Drill.Kind
	}
	if c.Drill.MinPot == 0 {
		c.Drill.MinPot = defaults.Drill.MinPot
	}
	if c.Drill.MaxPot == 0 {
		c.Drill.MaxPot = defaults.Drill.MaxPot
	}
	if c.Drill.Tolerance == 0 {
		c.Drill.Tolerance = defaults.Drill.Tolerance
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}

	if c.Store.Backend == "" {
		c.Store.Backend = defaults.Store.Backend
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = defaults.Store.KeyPrefix
	}
}

// Save writes the configuration back as HCL.
func Save(filename string, c *Config) error {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(*c, f.Body())
	if err := fileutil.WriteFileAtomic(filename, f.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := scenario.ParseKind(c.Drill.Kind); err != nil {
		return err
	}
	if err := c.GeneratorOptions().Validate(); err != nil {
		return fmt.Errorf("invalid drill settings: %w", err)
	}
	if c.Drill.Tolerance <= 0 {
		// zero in the file reads back as the default
		return fmt.Errorf("tolerance must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.Store.Backend {
	case store.BackendFile:
	case store.BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("redis_url is required for the redis store")
		}
	default:
		return fmt.Errorf("invalid store backend: %s", c.Store.Backend)
	}

	return nil
}

// Kind returns the parsed question kind selection.
func (c *Config) Kind() scenario.Kind {
	kind, err := scenario.ParseKind(c.Drill.Kind)
	if err != nil {
		return scenario.Random
	}
	return kind
}

// GeneratorOptions converts the drill settings into generator options.
func (c *Config) GeneratorOptions() scenario.Options {
	opts := scenario.Options{
		MinPot:            c.Drill.MinPot,
		MaxPot:            c.Drill.MaxPot,
		BetSizePercent:    c.Drill.FixedBetSize,
		ExcludeOccasional: c.Drill.ExcludeOccasional,
	}
	for _, size := range c.Drill.BetSizes {
		opts.BetSizes = append(opts.BetSizes, scenario.BetSize{
			Percent: size.Percent,
			Weight:  size.Weight,
		})
	}
	return opts
}

// StoreOptions returns the score store options rooted at dir.
func (c *Config) StoreOptions(dir string) store.Options {
	return store.Options{
		Backend:   c.Store.Backend,
		Dir:       dir,
		RedisURL:  c.Store.RedisURL,
		KeyPrefix: c.Store.KeyPrefix,
	}
}
