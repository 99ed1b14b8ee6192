package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	logLevel       string
	logFormat      string
	timeoutSeconds int
	noColor        bool
	debug          bool
)

var rootCmd = &cobra.Command{
	Use:   "gsread",
	Short: "Read-only Gainsight query tool",
	Long: `gsread reads companies, contacts and timeline activities from the
Gainsight data query API and prints them as console reports.

Every command is strictly read-only: it only issues query calls.

Connection settings come from the environment:
  GAINSIGHT_DOMAIN       tenant URL, e.g. https://acme.gainsightcloud.com
  GAINSIGHT_ACCESS_KEY   API access key
  GAINSIGHT_COMPANY_ID   default --company-id
  GAINSIGHT_COMPANY_NAME default --company-name
  GAINSIGHT_USER_EMAIL   default --user-email
  GAINSIGHT_REDACT       0 shows full email addresses (redacted by default)`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to optional YAML configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Request and output overrides
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0,
		"Override per-request timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Log every API exchange and print raw JSON where supported")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the persistent flag override values
func GetCLIOverrides() config.Overrides {
	return config.Overrides{
		LogLevel:       logLevel,
		LogFormat:      logFormat,
		TimeoutSeconds: timeoutSeconds,
		NoColor:        noColor,
		Debug:          debug,
	}
}
