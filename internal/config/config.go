package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SourceURLEnv names the environment variable holding the feed URL.
const SourceURLEnv = "SOURCE_CALENDAR_URL"

const (
	DefaultKeyword    = "Office Hours"
	DefaultOutputDir  = "output"
	DefaultOutputFile = "filtered_calendar.ics"
	DefaultLogLevel   = "info"
)

// ErrMissingSourceURL is returned by Validate when SOURCE_CALENDAR_URL is unset.
var ErrMissingSourceURL = errors.New(SourceURLEnv + " is not set")

// Error is a configuration error. It is always fatal.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config is the effective configuration for one run.
//
// SourceURL only ever comes from the environment so the secret feed URL
// never ends up in a checked-in YAML file.
type Config struct {
	SourceURL string `yaml:"-"`

	// Keyword excludes every event whose SUMMARY contains it (case-insensitive).
	Keyword string `yaml:"keyword"`

	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`

	// UserAgent, if set, is sent with the feed request.
	UserAgent string `yaml:"user_agent"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Schedule is an optional cron expression (e.g. "*/15 * * * *").
	// Empty means a single run and exit.
	Schedule string `yaml:"schedule"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Keyword:    DefaultKeyword,
		OutputDir:  DefaultOutputDir,
		OutputFile: DefaultOutputFile,
		LogLevel:   DefaultLogLevel,
	}
}

// Normalize fills in missing/zero values with defaults so that partial
// YAML files still behave correctly.
func (c *Config) Normalize() {
	c.SourceURL = strings.TrimSpace(c.SourceURL)
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.Schedule = strings.TrimSpace(c.Schedule)
}

// Validate reports configuration that makes a run impossible.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return &Error{Field: SourceURLEnv, Err: ErrMissingSourceURL}
	}
	return nil
}

// OutputPath is the full path of the filtered calendar file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}

// Load builds the configuration.
//
// Behavior:
//   - path == "": start from DefaultConfig
//   - otherwise read YAML from path (a missing file is an error) and normalize
//   - SourceURL is always taken from SOURCE_CALENDAR_URL
//
// Load does not validate; callers run Validate before doing any I/O.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &Error{Field: "file", Err: err}
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &Error{Field: "file", Err: fmt.Errorf("parse %s: %w", path, err)}
		}
	}

	cfg.SourceURL = os.Getenv(SourceURLEnv)
	cfg.Normalize()

	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set in the environment win. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &Error{Field: "env file", Err: err}
	}
	return nil
}
