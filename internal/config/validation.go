package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateFetch()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateAPI() ValidationErrors {
	var errors ValidationErrors

	if c.API.Domain == "" {
		errors = append(errors, ValidationError{
			Field:   "api.domain",
			Message: "domain is required (set " + EnvDomain + ")",
		})
	} else if !strings.HasPrefix(c.API.Domain, "http://") && !strings.HasPrefix(c.API.Domain, "https://") {
		errors = append(errors, ValidationError{
			Field:   "api.domain",
			Message: "domain must start with http:// or https://",
		})
	}

	if c.API.AccessKey == "" {
		errors = append(errors, ValidationError{
			Field:   "api.access_key",
			Message: "access key is required (set " + EnvAccessKey + ")",
		})
	}

	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.API.PingTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.ping_timeout_seconds",
			Message: "ping_timeout_seconds must be positive",
		})
	}

	return errors
}

func (c *Config) validateFetch() ValidationErrors {
	var errors ValidationErrors

	if c.Fetch.PageSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetch.page_size",
			Message: "page_size must be positive",
		})
	}

	if c.Fetch.TimelineLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetch.timeline_limit",
			Message: "timeline_limit must be positive",
		})
	}

	if c.Fetch.ContactsLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetch.contacts_limit",
			Message: "contacts_limit must be positive",
		})
	}

	if c.Fetch.LookupTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetch.lookup_timeout_seconds",
			Message: "lookup_timeout_seconds must be positive",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"lines": true, "table": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'lines' or 'table'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}

// RequireValue returns a ValidationErrors holding one entry when value is empty.
// Commands use it for identifiers that may come from a flag or the environment.
func RequireValue(field, value, hint string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return ValidationErrors{{
		Field:   field,
		Message: hint,
	}}
}
