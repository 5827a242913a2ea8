package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hostkit/rental-tools/internal/calendar"
	"github.com/hostkit/rental-tools/internal/contacts"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatHTML OutputFormat = "html"
	FormatCSV  OutputFormat = "csv"
	FormatICS  OutputFormat = "ics"
)

// parseFormat validates s against the formats a command supports.
func parseFormat(s string, allowed ...OutputFormat) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	names := make([]string, len(allowed))
	for i, a := range allowed {
		if format == a {
			return format, nil
		}
		names[i] = "'" + string(a) + "'"
	}
	return "", fmt.Errorf("invalid format: %s (must be %s)", s, strings.Join(names, ", "))
}

// CalendarResult is the JSON form of the calendar command.
type CalendarResult struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Month       *calendar.Month `json:"month"`
	Skipped     int             `json:"skipped"`
}

// ContactsResult contains data about a contacts export
type ContactsResult struct {
	GeneratedAt time.Time          `json:"generated_at"`
	File        string             `json:"file,omitempty"`
	Count       int                `json:"count"`
	Skipped     int                `json:"skipped"`
	Grouped     bool               `json:"grouped"`
	Contacts    []contacts.Contact `json:"contacts,omitempty"`
}

// MailResult contains the generated arrival mail
type MailResult struct {
	GeneratedAt time.Time `json:"generated_at"`
	Cutoff      string    `json:"cutoff"`
	Count       int       `json:"count"`
	Skipped     int       `json:"skipped"`
	Text        string    `json:"text"`
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeCalendar renders m in the given format.
func writeCalendar(w io.Writer, result *CalendarResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return calendar.WriteText(w, result.Month)
	case FormatHTML:
		return calendar.WriteHTML(w, result.Month)
	case FormatCSV:
		return calendar.WriteCSV(w, result.Month)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(result.Month, result.GeneratedAt))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeContactsSummary reports a contacts export.
func writeContactsSummary(w io.Writer, result *ContactsResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		label := "contacts"
		if result.Grouped {
			label = "merged contacts"
		}
		fmt.Fprintf(w, "Wrote %d %s to %s\n", result.Count, label, result.File)
		if verbose {
			for _, c := range result.Contacts {
				fmt.Fprintf(w, "  %s  %s\n", c.Name, c.Phone)
			}
		}
		if result.Skipped > 0 {
			fmt.Fprintf(w, "Skipped %d rows (see log)\n", result.Skipped)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeMail prints the mail text, or the full result as JSON.
func writeMail(w io.Writer, result *MailResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		_, err := io.WriteString(w, result.Text)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
