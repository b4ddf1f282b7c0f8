package config

import (
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/journalgen/internal/generator"
	"github.com/cleared-dev/journalgen/internal/journal"
	"github.com/cleared-dev/journalgen/internal/logger"
	"github.com/cleared-dev/journalgen/internal/model"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "JOURNALGEN_"

// Preset names.
const (
	PresetMixed     = "mixed"
	PresetAllErrors = "all-errors"
)

// Config describes one generator run.
type Config struct {
	Entries        int                `yaml:"entries"                   env:"ENTRIES"`
	Output         string             `yaml:"output"                    env:"OUTPUT"`
	ErrorPercent   float64            `yaml:"error_percent"             env:"ERROR_PERCENT"`
	ErrorType      string             `yaml:"error_type"                env:"ERROR_TYPE"`
	AccountingDate string             `yaml:"accounting_date,omitempty" env:"ACCOUNTING_DATE"` // "YYYY-MM-DD", empty = today
	Shuffle        bool               `yaml:"shuffle"                   env:"SHUFFLE"`
	Seed           uint64             `yaml:"seed,omitempty"            env:"SEED"` // 0 = pick one
	Manifest       string             `yaml:"manifest,omitempty"        env:"MANIFEST"`
	Fields         model.LineDefaults `yaml:"fields"                    envPrefix:"FIELD_"`
	Log            logger.Config      `yaml:"log"                       envPrefix:"LOG_"`
}

// Default returns the mixed preset.
func Default() *Config {
	return &Config{
		Entries:      1000,
		Output:       "error_scenarios.csv",
		ErrorPercent: 10,
		ErrorType:    generator.Mixed,
		Fields:       model.DefaultLineDefaults(),
		Log: logger.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// PresetNames lists the built-in presets.
func PresetNames() []string {
	return []string{PresetMixed, PresetAllErrors}
}

// Preset returns the named preset. "mixed" mostly emits valid entries with
// errors at the end; "all-errors" makes every entry an error.
func Preset(name string) (*Config, error) {
	cfg := Default()
	switch name {
	case PresetMixed, "":
	case PresetAllErrors:
		cfg.Entries = 100
		cfg.Output = "all_errors.csv"
		cfg.ErrorPercent = 100
	default:
		return nil, fmt.Errorf("unknown preset %q (valid: %v)", name, PresetNames())
	}
	return cfg, nil
}

// Load reads a config file on top of the mixed preset.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := Merge(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge reads a YAML file into cfg. Keys missing from the file keep their
// current values.
func Merge(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any JOURNALGEN_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects configurations that would produce degenerate output.
func (c *Config) Validate() error {
	if c.Entries < 0 {
		return fmt.Errorf("entries must not be negative, got %d", c.Entries)
	}
	if math.IsNaN(c.ErrorPercent) || c.ErrorPercent < 0 || c.ErrorPercent > 100 {
		return fmt.Errorf("error percent must be within [0, 100], got %g", c.ErrorPercent)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Manifest != "" && c.Manifest == c.Output {
		return fmt.Errorf("manifest path must differ from output path")
	}
	if _, err := c.Categories(); err != nil {
		return err
	}
	if _, err := c.Date(); err != nil {
		return err
	}
	return nil
}

// Categories resolves ErrorType.
func (c *Config) Categories() ([]generator.Category, error) {
	return generator.ParseCategories(c.ErrorType)
}

// Date parses AccountingDate. A zero time means "today".
func (c *Config) Date() (time.Time, error) {
	if c.AccountingDate == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(journal.DateFormat, c.AccountingDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing accounting date %q: %w", c.AccountingDate, err)
	}
	return d, nil
}

// ErrorTypes returns the accepted values of ErrorType.
func ErrorTypes() []string {
	var names []string
	for _, c := range generator.Categories() {
		names = append(names, string(c))
	}
	return slices.Concat(names, []string{generator.Mixed})
}
