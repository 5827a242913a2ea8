package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hostkit/rental-tools/internal/fields"
	"github.com/hostkit/rental-tools/internal/logger"
	"github.com/hostkit/rental-tools/internal/records"
)

// Load reads configuration from environment variables, applies defaults
// for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value, ok := os.LookupEnv(envName)
		if !ok || value == "" {
			if field.Tag.Get("required") == "true" {
				return fmt.Errorf("required environment variable %s is not set", envName)
			}
			value = field.Tag.Get("default")
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid and reports every
// failure at once.
func (c *Config) Validate() error {
	var errs []string

	if utf8.RuneCountInString(c.Parse.Delimiter) != 1 {
		errs = append(errs, fmt.Sprintf("RENTAL_DELIMITER (%q) must be a single character", c.Parse.Delimiter))
	} else if d := c.Delimiter(); d == '"' || d == '\n' || d == '\r' {
		errs = append(errs, fmt.Sprintf("RENTAL_DELIMITER (%q) cannot be a quote or line break", c.Parse.Delimiter))
	}

	if _, err := records.ParseMode(c.Parse.Mode); err != nil {
		errs = append(errs, fmt.Sprintf("RENTAL_PARSE_MODE (%q) must be one of: strict, simple", c.Parse.Mode))
	}

	if _, err := fields.ParseClock(c.Mail.Cutoff); err != nil {
		errs = append(errs, fmt.Sprintf("RENTAL_ARRIVAL_CUTOFF (%q) must be an H:MM time", c.Mail.Cutoff))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("RENTAL_LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		errs = append(errs, "RENTAL_OUTPUT_DIR cannot be blank")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Delimiter returns the configured separator as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Parse.Delimiter)
	return r
}

// RecordOptions returns the tokenizer options for booking exports.
func (c *Config) RecordOptions() records.Options {
	mode, err := records.ParseMode(c.Parse.Mode)
	if err != nil {
		mode = records.ModeStrict
	}
	return records.Options{Delimiter: c.Delimiter(), Mode: mode}
}

// String returns a one-line representation for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Parse: {Delimiter: %q, Mode: %q, HeaderMarker: %q}, Output: {Dir: %q}, Mail: {Cutoff: %q}, Logging: {Level: %q}}",
		c.Parse.Delimiter, c.Parse.Mode, c.Parse.HeaderMarker, c.Output.Dir, c.Mail.Cutoff, c.Logging.Level)
}
