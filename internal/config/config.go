package config

import "fmt"

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Scan    ScanConfig    `mapstructure:"scan" yaml:"scan"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains record and report rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// ScanConfig contains workspace scan settings
type ScanConfig struct {
	Workers  int      `mapstructure:"workers" yaml:"workers"`
	Exclude  []string `mapstructure:"exclude" yaml:"exclude"`
	Progress bool     `mapstructure:"progress" yaml:"progress"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, falling back to defaults for
// out-of-range values and rejecting unknown enumerations.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	case "":
		c.Output.Format = DefaultOutputFormat
	default:
		return fmt.Errorf("invalid output.format %q (use text, json, or yaml)", c.Output.Format)
	}

	if c.Scan.Workers < 1 {
		c.Scan.Workers = DefaultWorkers
	}

	switch c.Logging.Format {
	case "pretty", "json":
	case "":
		c.Logging.Format = DefaultLogFormat
	default:
		return fmt.Errorf("invalid logging.format %q (use pretty or json)", c.Logging.Format)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	return nil
}
