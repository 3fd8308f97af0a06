package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Output settings
	OutputPath = "system_info.txt"

	// Command settings
	CommandTimeout = 10 * time.Second

	// Linux procfs mount point
	ProcRoot = "/proc"

	// Config file looked up in the working directory when no path is given
	DefaultConfigFile = "sysinfo.yaml"
)

// Build info (injected at build time via ldflags)
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config holds the checker settings
type Config struct {
	OutputPath     string        `yaml:"output_path"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	Extended       bool          `yaml:"extended"`
	Stdout         bool          `yaml:"stdout"`
	OS             string        `yaml:"os"`       // overrides the detected OS identifier
	ProcRoot       string        `yaml:"proc_root"`
	Debug          bool          `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		OutputPath:     OutputPath,
		CommandTimeout: CommandTimeout,
		ProcRoot:       ProcRoot,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// SYSINFO_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is not an error
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("SYSINFO_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("SYSINFO_OS"); v != "" {
		c.OS = v
	}
	if v := os.Getenv("SYSINFO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SYSINFO_TIMEOUT: %w", err)
		}
		c.CommandTimeout = d
	}
	if v, ok := os.LookupEnv("SYSINFO_EXTENDED"); ok {
		c.Extended = isTrue(v)
	}
	if v, ok := os.LookupEnv("SYSINFO_STDOUT"); ok {
		c.Stdout = isTrue(v)
	}
	if IsDebugMode() {
		c.Debug = true
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("%w: command timeout must be positive, got %s", ErrInvalid, c.CommandTimeout)
	}
	if c.ProcRoot == "" {
		c.ProcRoot = ProcRoot
	}
	return nil
}

// IsDebugMode checks if debug mode is enabled
func IsDebugMode() bool {
	return isTrue(os.Getenv("SYSINFO_DEBUG"))
}

func isTrue(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1"
}
