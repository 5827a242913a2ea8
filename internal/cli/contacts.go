package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostkit/rental-tools/internal/contacts"
	"github.com/hostkit/rental-tools/internal/guest"
	"github.com/hostkit/rental-tools/internal/logger"
)

var (
	flagContactsInput  string
	flagGroup          bool
	flagContactsSort   string
	flagContactsOutput string
	flagContactsFormat string
)

func newContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Export guests as an address-book contacts CSV",
		Long: `Builds one contact per booking, named "YYMMDD - Apartment - Guest", and
writes them as a CSV that address books import directly. With --group,
bookings of the same guest (same name and phone) become a single contact
listing every apartment.`,
		Example: `  rental-tools contacts --input reservas.csv
  rental-tools contacts --input reservas.html --group --output-dir ~/contactos`,
		RunE: runContacts,
	}

	cmd.Flags().StringVar(&flagContactsInput, "input", "", "Booking export (CSV or HTML table) (required)")
	cmd.Flags().BoolVar(&flagGroup, "group", false, "Merge bookings of the same guest into one contact")
	cmd.Flags().StringVar(&flagContactsSort, "sort", "", "Order contacts by: date, room, name or arrival (default: file order)")
	cmd.Flags().StringVar(&flagContactsOutput, "output", "", "File name, '-' for stdout (default: derived from the check-in dates)")
	cmd.Flags().StringVar(&flagContactsFormat, "format", "text", "Summary format: text or json")

	cmd.MarkFlagRequired("input") // nolint:errcheck

	return cmd
}

func runContacts(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagContactsFormat, FormatText, FormatJSON)
	if err != nil {
		return err
	}
	order, err := parseSortOrder(flagContactsSort)
	if err != nil {
		return err
	}

	sess := newSession()
	return sess.Run("contacts", func() error {
		ds, err := sess.Load(flagContactsInput, sess.BookingPolicy())
		if err != nil {
			return err
		}

		entries, skips := guest.Extract(ds, guest.ExtractOptions{
			Layout:   guest.DefaultLayout(),
			Defaults: guest.ContactDefaults,
		})
		sortEntries(entries, order)

		eligible, eligSkips := contacts.Eligible(entries)
		skips = append(skips, eligSkips...)
		sess.ReportSkips(ds.Source, skips)

		var list []contacts.Contact
		if flagGroup {
			list = contacts.FromGroups(guest.GroupEntries(eligible))
		} else {
			list, _ = contacts.FromEntries(eligible)
		}

		result := &ContactsResult{
			GeneratedAt: time.Now().UTC(),
			Count:       len(list),
			Skipped:     len(skips),
			Grouped:     flagGroup,
			Contacts:    list,
		}

		if flagContactsOutput == "-" {
			return contacts.Write(cmd.OutOrStdout(), list)
		}

		name := flagContactsOutput
		if strings.TrimSpace(name) == "" {
			name = contacts.SuggestName(eligible, time.Now())
		}

		dir, err := outputDir()
		if err != nil {
			return err
		}
		result.File, err = dir.Write(name, func(w io.Writer) error {
			return contacts.Write(w, list)
		})
		if err != nil {
			return fmt.Errorf("writing contacts: %w", err)
		}

		sess.Metrics.AddCounter("contacts.written", int64(len(list)))
		sess.Log.Info("contacts written", logger.Fields{"file": result.File, "count": len(list)})

		return writeContactsSummary(cmd.OutOrStdout(), result, format, flagVerbose)
	})
}
