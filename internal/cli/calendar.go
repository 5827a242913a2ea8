package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostkit/rental-tools/internal/calendar"
	"github.com/hostkit/rental-tools/internal/logger"
	"github.com/hostkit/rental-tools/internal/session"
)

var (
	flagArrivals   string
	flagDepartures string
	flagMonth      string
	flagYear       int
	flagCalFormat  string
	flagCalOutput  string
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show arrivals and departures per day for one month",
		Long: `Counts bookings per day from the "Check in" column of the arrivals export
and the "Check-out" column of the departures export, and renders one month.
Without --month the current month is used, or the next one after the 15th.`,
		Example: `  rental-tools calendar --arrivals llegadas.csv --departures salidas.csv
  rental-tools calendar --arrivals llegadas.csv --month marzo --format html --output marzo.html`,
		RunE: runCalendar,
	}

	cmd.Flags().StringVar(&flagArrivals, "arrivals", "", "Booking export with the arrivals")
	cmd.Flags().StringVar(&flagDepartures, "departures", "", "Booking export with the departures")
	cmd.Flags().StringVar(&flagMonth, "month", "", "Month as a number or a Spanish/English name")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Year (defaults to the year of the selected month)")
	cmd.Flags().StringVar(&flagCalFormat, "format", "text", "Output format: text, json, html, csv or ics")
	cmd.Flags().StringVar(&flagCalOutput, "output", "", "Write to this file in the output directory instead of stdout")

	return cmd
}

func runCalendar(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(flagArrivals) == "" && strings.TrimSpace(flagDepartures) == "" {
		return fmt.Errorf("at least one of --arrivals or --departures is required")
	}

	format, err := parseFormat(flagCalFormat, FormatText, FormatJSON, FormatHTML, FormatCSV, FormatICS)
	if err != nil {
		return err
	}

	now := time.Now()
	year, month, err := selectMonth(now, flagMonth, flagYear)
	if err != nil {
		return err
	}

	sess := newSession()
	return sess.Run("calendar", func() error {
		arrivals, arrSkips, err := countFile(sess, flagArrivals, calendar.ArrivalColumn)
		if err != nil {
			return err
		}
		departures, depSkips, err := countFile(sess, flagDepartures, calendar.DepartureColumn)
		if err != nil {
			return err
		}

		m := calendar.Build(year, month, arrivals, departures, now)
		result := &CalendarResult{
			GeneratedAt: now.UTC(),
			Month:       m,
			Skipped:     arrSkips + depSkips,
		}

		sess.Metrics.SetGauge("calendar.arrivals", float64(m.Arrivals))
		sess.Metrics.SetGauge("calendar.departures", float64(m.Departures))
		sess.Log.Info("calendar built", logger.Fields{
			"month":      fmt.Sprintf("%d-%02d", year, int(month)),
			"arrivals":   m.Arrivals,
			"departures": m.Departures,
		})

		if flagCalOutput == "" {
			return writeCalendar(cmd.OutOrStdout(), result, format)
		}

		dir, err := outputDir()
		if err != nil {
			return err
		}
		path, err := dir.Write(flagCalOutput, func(w io.Writer) error {
			return writeCalendar(w, result, format)
		})
		if err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s %d to %s\n", m.Name, m.Year, path)
		return nil
	})
}

// selectMonth resolves --month/--year against the default month.
func selectMonth(now time.Time, monthFlag string, yearFlag int) (int, time.Month, error) {
	year, month := calendar.DefaultMonth(now)

	if monthFlag != "" {
		m, err := calendar.ParseMonth(monthFlag)
		if err != nil {
			return 0, 0, err
		}
		month = m
		year = now.Year()
	}
	if yearFlag != 0 {
		if yearFlag < 1 || yearFlag > 9999 {
			return 0, 0, fmt.Errorf("invalid year: %d", yearFlag)
		}
		year = yearFlag
	}

	return year, month, nil
}

// countFile loads one export and counts it by column. An unset path counts
// nothing.
func countFile(sess *session.Session, path, column string) (calendar.DailyCount, int, error) {
	if strings.TrimSpace(path) == "" {
		return calendar.DailyCount{}, 0, nil
	}

	ds, err := sess.Load(path, sess.BookingPolicy())
	if err != nil {
		return nil, 0, err
	}

	counts, skips, err := calendar.Count(ds, column)
	if err != nil {
		return nil, 0, err
	}
	sess.ReportSkips(ds.Source, skips)

	return counts, len(skips), nil
}
