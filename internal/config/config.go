// Package config loads rental-tools settings from the environment.
//
// Every setting has a default, so an empty environment yields a usable
// configuration. Command-line flags are seeded from these values and
// override them.
package config

// Config holds all rental-tools configuration.
type Config struct {
	Parse   ParseConfig
	Output  OutputConfig
	Mail    MailConfig
	Logging LoggingConfig
}

// ParseConfig controls how booking exports are tokenized.
type ParseConfig struct {
	// Delimiter is the single field separator character (default: ;)
	Delimiter string `env:"RENTAL_DELIMITER" default:";"`

	// Mode is strict (quote-aware) or simple (default: strict)
	Mode string `env:"RENTAL_PARSE_MODE" default:"strict"`

	// HeaderMarker is the first field of the header line (default: ID)
	HeaderMarker string `env:"RENTAL_HEADER_MARKER" default:"ID"`
}

// OutputConfig controls where generated files go.
type OutputConfig struct {
	Dir string `env:"RENTAL_OUTPUT_DIR" default:"."`
}

// MailConfig holds the late-arrival mail settings.
type MailConfig struct {
	// Cutoff is the H:MM time from which an arrival counts as late (default: 20:00)
	Cutoff string `env:"RENTAL_ARRIVAL_CUTOFF" default:"20:00"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `env:"RENTAL_LOG_LEVEL" default:"info"`
}
