// Package config provides configuration structures and loading for gsread.
package config

import "time"

// Config represents the complete application configuration.
type Config struct {
	API      APIConfig      `yaml:"api" mapstructure:"api"`
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// APIConfig represents the remote API endpoint and credentials.
type APIConfig struct {
	Domain             string `yaml:"domain" mapstructure:"domain"`
	AccessKey          string `yaml:"access_key" mapstructure:"access_key"`
	TimeoutSeconds     int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	PingTimeoutSeconds int    `yaml:"ping_timeout_seconds" mapstructure:"ping_timeout_seconds"`
}

// DefaultsConfig holds fallback values for per-command identifiers.
type DefaultsConfig struct {
	CompanyID   string `yaml:"company_id" mapstructure:"company_id"`
	CompanyName string `yaml:"company_name" mapstructure:"company_name"`
	UserEmail   string `yaml:"user_email" mapstructure:"user_email"`
}

// FetchConfig represents page sizes and limits for remote queries.
type FetchConfig struct {
	PageSize             int `yaml:"page_size" mapstructure:"page_size"`
	TimelineLimit        int `yaml:"timeline_limit" mapstructure:"timeline_limit"`
	ContactsLimit        int `yaml:"contacts_limit" mapstructure:"contacts_limit"`
	LookupTimeoutSeconds int `yaml:"lookup_timeout_seconds" mapstructure:"lookup_timeout_seconds"`
}

// OutputConfig represents console rendering settings.
type OutputConfig struct {
	Redact bool   `yaml:"redact" mapstructure:"redact"`
	Color  bool   `yaml:"color" mapstructure:"color"`
	Format string `yaml:"format" mapstructure:"format"` // lines or table
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			TimeoutSeconds:     15,
			PingTimeoutSeconds: 20,
		},
		Defaults: DefaultsConfig{
			CompanyName: "Unknown Company",
		},
		Fetch: FetchConfig{
			PageSize:             1000,
			TimelineLimit:        3,
			ContactsLimit:        10,
			LookupTimeoutSeconds: 10,
		},
		Output: OutputConfig{
			Redact: true,
			Color:  true,
			Format: "lines",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// PingTimeout returns the timeout for the user-list key check.
func (c *Config) PingTimeout() time.Duration {
	return time.Duration(c.API.PingTimeoutSeconds) * time.Second
}

// LookupTimeout returns the per-request timeout for the dashboard's secondary lookups.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.Fetch.LookupTimeoutSeconds) * time.Second
}

// Overrides contains flag values that override file and environment settings.
// Zero values leave the loaded configuration untouched.
type Overrides struct {
	LogLevel       string
	LogFormat      string
	TimeoutSeconds int
	PageSize       int
	OutputFormat   string
	NoColor        bool
	Debug          bool
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.TimeoutSeconds > 0 {
		c.API.TimeoutSeconds = o.TimeoutSeconds
		c.API.PingTimeoutSeconds = o.TimeoutSeconds
	}
	if o.PageSize > 0 {
		c.Fetch.PageSize = o.PageSize
	}
	if o.OutputFormat != "" {
		c.Output.Format = o.OutputFormat
	}
	if o.NoColor {
		c.Output.Color = false
	}
	if o.Debug {
		c.Logging.Level = "debug"
	}
}
