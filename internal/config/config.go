// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job        string `json:"job,omitempty"`         // Path to job description text file
	ResumesDir string `json:"resumes_dir,omitempty"` // Directory of resume files to analyze

	// Job requirement overrides
	JobTitle       string `json:"job_title,omitempty"`       // Job title used for the title match
	RequiredSkills string `json:"required_skills,omitempty"` // Comma-separated required skills

	// Behavior
	Workers   int    `json:"workers,omitempty" validate:"omitempty,min=1,max=64"` // Concurrent analysis workers
	OutputDir string `json:"output_dir,omitempty"`                                // Directory for exported reports
	Format    string `json:"format,omitempty" validate:"omitempty,oneof=json csv markdown"`
	Verbose   bool   `json:"verbose,omitempty"`  // Print detailed debug information
	LogJSON   bool   `json:"log_json,omitempty"` // Emit JSON-encoded logs
}

// DefaultWorkers is the worker pool size used when the config and flags
// leave Workers unset.
const DefaultWorkers = 4

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required fields are checked by CLI flag validation after merging,
// so this only rejects values that can never be correct.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.ResumesDir != "" {
		if _, err := os.Stat(c.ResumesDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: resumes directory not found: %s", c.ResumesDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.ResumesDir == "" {
		result.ResumesDir = defaults.ResumesDir
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.RequiredSkills == "" {
		result.RequiredSkills = defaults.RequiredSkills
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	// Numeric fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Boolean fields: true wins
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.LogJSON {
		result.LogJSON = defaults.LogJSON
	}

	return result
}
