package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ken/kclosest/pkg/core/distance"
	"github.com/ken/kclosest/pkg/selector"
)

var (
	// ErrInvalidConfig is returned by Validate and LoadConfig for bad values
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the application configuration
type Config struct {
	Selector SelectorConfig `yaml:"selector"`
	Log      LogConfig      `yaml:"log"`
}

// SelectorConfig holds selection-related configuration
type SelectorConfig struct {
	Metric string `yaml:"metric"`
	Pivot  string `yaml:"pivot"`
	// Seed for the random pivot. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Selector: SelectorConfig{
			Metric: string(distance.SquaredEuclidean),
			Pivot:  selector.PivotMidpoint.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that every value names something that exists
func (c *Config) Validate() error {
	if _, err := distance.GetMetric(c.Selector.Metric); err != nil {
		return fmt.Errorf("%w: selector.metric: %w", ErrInvalidConfig, err)
	}
	if _, err := selector.ParsePivot(c.Selector.Pivot); err != nil {
		return fmt.Errorf("%w: selector.pivot: %w", ErrInvalidConfig, err)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// SelectorOptions translates the selector section into selector options
func (c *Config) SelectorOptions() ([]selector.Option, error) {
	pivot, err := selector.ParsePivot(c.Selector.Pivot)
	if err != nil {
		return nil, fmt.Errorf("%w: selector.pivot: %w", ErrInvalidConfig, err)
	}

	opts := []selector.Option{selector.WithPivot(pivot)}
	if c.Selector.Seed != 0 {
		opts = append(opts, selector.WithSeed(c.Selector.Seed))
	}

	return opts, nil
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil // Return default config if file doesn't exist
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
