package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostkit/rental-tools/internal/guest"
	"github.com/hostkit/rental-tools/internal/logger"
	"github.com/hostkit/rental-tools/internal/mailtext"
	"github.com/hostkit/rental-tools/internal/records"
)

var (
	flagApartments string
	flagGuests     string
	flagCutoff     string
	flagMailSort   string
	flagMailFormat string
)

func newMailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Write the late check-in mail for guests arriving after the cutoff",
		Long: `Joins the guests export with the apartments file on the room-type {id}
token and prints one block per guest whose expected arrival is at or after
the cutoff time (RENTAL_ARRIVAL_CUTOFF, 20:00 by default).`,
		Example: `  rental-tools mail --apartments apartamentos.csv --guests reservas.csv
  rental-tools mail --apartments apartamentos.csv --guests reservas.csv --cutoff 21:00 --sort arrival`,
		RunE: runMail,
	}

	cmd.Flags().StringVar(&flagApartments, "apartments", "", "Apartments file: id in the first column, address in the fourth (required)")
	cmd.Flags().StringVar(&flagGuests, "guests", "", "Booking export with the guests (required)")
	cmd.Flags().StringVar(&flagCutoff, "cutoff", "", "Arrival time H:MM from which guests are included")
	cmd.Flags().StringVar(&flagMailSort, "sort", "", "Order blocks by: date, room, name or arrival (default: file order)")
	cmd.Flags().StringVar(&flagMailFormat, "format", "text", "Output format: text or json")

	cmd.MarkFlagRequired("apartments") // nolint:errcheck
	cmd.MarkFlagRequired("guests")     // nolint:errcheck

	return cmd
}

func runMail(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagMailFormat, FormatText, FormatJSON)
	if err != nil {
		return err
	}
	order, err := parseSortOrder(flagMailSort)
	if err != nil {
		return err
	}

	cutoff := cfg.Mail.Cutoff
	if strings.TrimSpace(flagCutoff) != "" {
		cutoff = strings.TrimSpace(flagCutoff)
	}

	sess := newSession()
	return sess.Run("mail", func() error {
		// The apartments file has its column names on the first line.
		aptDS, err := sess.Load(flagApartments, records.HeaderPolicy{})
		if err != nil {
			return err
		}
		dir, err := mailtext.LoadDirectory(aptDS)
		if err != nil {
			return err
		}

		guestDS, err := sess.Load(flagGuests, sess.BookingPolicy())
		if err != nil {
			return err
		}
		entries, skips := guest.Extract(guestDS, guest.ExtractOptions{
			Layout:        guest.DefaultLayout(),
			Defaults:      guest.MailDefaults,
			RequireRoomID: true,
		})
		if len(entries) == 0 {
			sess.ReportSkips(guestDS.Source, skips)
			return &records.EmptyDatasetError{Source: guestDS.Source}
		}
		sortEntries(entries, order)

		gen := &mailtext.Generator{Cutoff: cutoff}
		res, err := gen.Generate(dir, entries)
		if err != nil {
			return fmt.Errorf("generating mail: %w", err)
		}
		skips = append(skips, res.Skips...)
		sess.ReportSkips(guestDS.Source, skips)

		sess.Metrics.AddCounter("mail.blocks", int64(res.Count))
		sess.Log.Info("mail generated", logger.Fields{
			"apartments": len(dir),
			"guests":     len(entries),
			"blocks":     res.Count,
			"cutoff":     cutoff,
		})

		return writeMail(cmd.OutOrStdout(), &MailResult{
			GeneratedAt: time.Now().UTC(),
			Cutoff:      cutoff,
			Count:       res.Count,
			Skipped:     len(skips),
			Text:        res.Text,
		}, format)
	})
}
