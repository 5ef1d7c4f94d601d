package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/rospkg-go/internal/app"
	"github.com/quantmind-br/rospkg-go/internal/config"
	"github.com/quantmind-br/rospkg-go/internal/manifest"
	"github.com/quantmind-br/rospkg-go/internal/output"
	"github.com/quantmind-br/rospkg-go/internal/utils"
	"github.com/quantmind-br/rospkg-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rospkg",
	Short: "Parse and validate ROS package manifests",
	Long: `rospkg is a CLI tool for working with ROS package.xml manifests.

It parses manifests across schema formats 1 to 3, checks their structure
(required fields, version and email shapes) and semantics (self-dependencies),
and can scan a whole workspace tree in one pass.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.rospkg/config.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", config.DefaultOutputFormat, "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Scan flags
	scanCmd.Flags().IntP("workers", "j", config.DefaultWorkers, "Number of concurrent workers")
	scanCmd.Flags().StringSlice("exclude", nil, "Regex patterns for paths to skip")
	scanCmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	// Bind flags to viper
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output.file", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("scan.workers", scanCmd.Flags().Lookup("workers"))

	// Add subcommands
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads configuration and initializes the logger
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	return cfg, nil
}

// outputWriter returns the destination stream per configuration, plus a
// close function for file destinations.
func outputWriter(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.Output.File == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	path := utils.ExpandPath(cfg.Output.File)
	if err := utils.EnsureDir(path); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <package.xml>",
	Short: "Parse a manifest and print the validated record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		m, err := manifest.ParseFile(utils.ExpandPath(args[0]))
		if err != nil {
			return err
		}
		m, err = manifest.Validate(m)
		if err != nil {
			return err
		}

		format, err := output.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}

		out, closeOut, err := outputWriter(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeOut() }()

		return output.NewWriter(out).WriteManifest(m, format)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <package.xml>",
	Short: "Parse and validate a manifest, reporting the first problem found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := setup(); err != nil {
			return err
		}

		path := utils.ExpandPath(args[0])
		m, err := manifest.ParseFile(path)
		if err != nil {
			return err
		}
		m, err = manifest.Validate(m)
		if err != nil {
			return err
		}

		log.Info().Str("path", path).Str("package", m.Name).Str("version", m.Version).Msg("Manifest is valid")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s %s)\n", path, m.Name, m.Version)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [workspace]",
	Short: "Validate every package.xml under a workspace tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		if patterns, _ := cmd.Flags().GetStringSlice("exclude"); len(patterns) > 0 {
			cfg.Scan.Exclude = patterns
		}
		if noProgress, _ := cmd.Flags().GetBool("no-progress"); noProgress || cfg.Output.Format != "text" {
			cfg.Scan.Progress = false
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		scanner, err := app.NewScanner(app.ScannerOptions{Config: cfg, Logger: log})
		if err != nil {
			return err
		}

		report, err := scanner.Scan(cmd.Context(), root)
		if err != nil {
			return err
		}

		format, err := output.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}

		out, closeOut, err := outputWriter(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeOut() }()

		if err := output.NewWriter(out).WriteReport(report, format); err != nil {
			return err
		}

		if report.HasFailures() {
			return fmt.Errorf("%d of %d manifests failed validation", report.Invalid(), report.Total())
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
