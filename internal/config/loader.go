package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable names recognised by gsread.
const (
	EnvDomain      = "GAINSIGHT_DOMAIN"
	EnvAccessKey   = "GAINSIGHT_ACCESS_KEY"
	EnvCompanyID   = "GAINSIGHT_COMPANY_ID"
	EnvCompanyName = "GAINSIGHT_COMPANY_NAME"
	EnvUserEmail   = "GAINSIGHT_USER_EMAIL"
	EnvRedact      = "GAINSIGHT_REDACT"
)

// envBindings maps configuration keys to the environment variables that feed them.
var envBindings = map[string]string{
	"api.domain":            EnvDomain,
	"api.access_key":        EnvAccessKey,
	"defaults.company_id":   EnvCompanyID,
	"defaults.company_name": EnvCompanyName,
	"defaults.user_email":   EnvUserEmail,
}

// Load reads configuration from the environment and, when configPath is not
// empty, from the YAML file at that path. Environment variables win over file
// values. File values support ${VAR} substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)
	applyRedactEnv(cfg)

	return cfg, nil
}

// applyRedactEnv honours GAINSIGHT_REDACT: any value other than "0" turns
// redaction on.
func applyRedactEnv(cfg *Config) {
	if value, ok := os.LookupEnv(EnvRedact); ok {
		cfg.Output.Redact = value != "0"
	}
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.API.Domain = expandEnvVar(cfg.API.Domain)
	cfg.API.AccessKey = expandEnvVar(cfg.API.AccessKey)

	cfg.Defaults.CompanyID = expandEnvVar(cfg.Defaults.CompanyID)
	cfg.Defaults.CompanyName = expandEnvVar(cfg.Defaults.CompanyName)
	cfg.Defaults.UserEmail = expandEnvVar(cfg.Defaults.UserEmail)

	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}
