package main

import (
	"os"

	"dyno/internal/config"
	"dyno/internal/logging"
	"dyno/internal/version"

	"github.com/spf13/cobra"
)

var (
	// formatFlag is the CLI --format flag value
	formatFlag string
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "dyno",
	Short: "dyno - Vehicle modification performance calculator",
	Long: `dyno estimates the real-world performance impact of aftermarket vehicle
modifications. It models horsepower and torque gains per aspiration type,
resolves stacking conflicts between modifications, and projects derived
metrics (0-60, quarter mile, braking, lateral g) with graded confidence.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("dyno version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "human",
		"Output format: json or human")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, error (default from config)")
}

// outputFormat resolves the effective output format from the --format flag.
func outputFormat() OutputFormat {
	if formatFlag == string(FormatJSON) {
		return FormatJSON
	}
	return FormatHuman
}

// resolveLogLevel determines the effective log level from CLI flag, env var,
// and config. Precedence: CLI flag > DYNO_LOG_LEVEL env var > config > info.
func resolveLogLevel(cfg *config.Config) logging.LogLevel {
	if logLevelFlag != "" {
		return logging.ParseLevel(logLevelFlag)
	}
	if env := os.Getenv("DYNO_LOG_LEVEL"); env != "" {
		return logging.ParseLevel(env)
	}
	if cfg != nil && cfg.Logging.Level != "" {
		return logging.ParseLevel(cfg.Logging.Level)
	}
	return logging.InfoLevel
}

// newLogger builds the logger used by commands that talk to the catalog.
func newLogger(cfg *config.Config) *logging.Logger {
	format := logging.HumanFormat
	if cfg != nil && cfg.Logging.Format == "json" {
		format = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: format,
		Level:  resolveLogLevel(cfg),
		Output: os.Stderr,
	})
}
