package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Output defaults
	DefaultOutputFormat = "text"

	// Scan defaults
	DefaultWorkers  = 5
	DefaultProgress = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// Default exclude patterns for workspace scans
var DefaultExcludePatterns = []string{
	`.*/\.git/.*`,
	`.*/build/.*`,
	`.*/install/.*`,
	`.*/log/.*`,
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rospkg"
	}
	return filepath.Join(home, ".rospkg")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Scan: ScanConfig{
			Workers:  DefaultWorkers,
			Exclude:  DefaultExcludePatterns,
			Progress: DefaultProgress,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
