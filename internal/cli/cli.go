package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostkit/rental-tools/internal/config"
	"github.com/hostkit/rental-tools/internal/export"
	"github.com/hostkit/rental-tools/internal/logger"
	"github.com/hostkit/rental-tools/internal/records"
	"github.com/hostkit/rental-tools/internal/session"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitBusy    = 3
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

var (
	flagDelimiter    string
	flagMode         string
	flagHeaderMarker string
	flagOutputDir    string
	flagLogLevel     string
	flagVerbose      bool

	// cfg is the environment configuration with flag overrides applied.
	cfg *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rental-tools",
		Short: "Generate calendars, contacts and arrival mails from booking exports",
		Long: `A CLI tool for holiday-rental operators.
Reads the booking and apartment exports of the property manager and produces
a monthly arrivals/departures calendar, an address-book contacts CSV and the
late check-in mail text.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	// Defaults mirror the config package; unchanged flags take the environment value.
	pf := cmd.PersistentFlags()
	pf.StringVar(&flagDelimiter, "delimiter", ";", "Field delimiter of the exports (RENTAL_DELIMITER)")
	pf.StringVar(&flagMode, "mode", "strict", "Parse mode: strict or simple (RENTAL_PARSE_MODE)")
	pf.StringVar(&flagHeaderMarker, "header-marker", "ID", "First field of the header line, empty for the first line (RENTAL_HEADER_MARKER)")
	pf.StringVar(&flagOutputDir, "output-dir", ".", "Directory for generated files (RENTAL_OUTPUT_DIR)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error (RENTAL_LOG_LEVEL)")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging (same as --log-level debug)")

	cmd.AddCommand(newCalendarCmd())
	cmd.AddCommand(newContactsCmd())
	cmd.AddCommand(newMailCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the environment, applies explicitly set flags on top and
// installs the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	override("delimiter", &loaded.Parse.Delimiter, flagDelimiter)
	override("mode", &loaded.Parse.Mode, flagMode)
	override("header-marker", &loaded.Parse.HeaderMarker, flagHeaderMarker)
	override("output-dir", &loaded.Output.Dir, flagOutputDir)
	override("log-level", &loaded.Logging.Level, flagLogLevel)
	if flagVerbose {
		loaded.Logging.Level = string(logger.LevelDebug)
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	level, _ := logger.ParseLevel(loaded.Logging.Level)
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	logger.Debug("configuration loaded", logger.Fields{"config": loaded.String()})

	cfg = loaded
	return nil
}

// newSession starts a session with the effective parse settings.
func newSession() *session.Session {
	return session.New(logger.Default(), cfg.RecordOptions(), cfg.Parse.HeaderMarker)
}

// outputDir opens the configured output directory.
func outputDir() (*export.Dir, error) {
	dir, err := export.New(cfg.Output.Dir)
	if err != nil {
		return nil, fmt.Errorf("initializing output directory: %w", err)
	}
	return dir, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", describe(err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, session.ErrBusy) {
		return ExitBusy
	}
	return ExitError
}

// describe adds a hint to the structural errors users can fix themselves.
func describe(err error) error {
	var mhe *records.MissingHeaderError
	if errors.As(err, &mhe) && mhe.Marker != "" {
		return fmt.Errorf("%w (check --header-marker)", err)
	}
	var ede *records.EmptyDatasetError
	if errors.As(err, &ede) {
		return fmt.Errorf("%w (check --delimiter and --mode)", err)
	}
	return err
}
