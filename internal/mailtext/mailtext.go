// Package mailtext builds the plain-text arrival notice sent to the late
// check-in team: one block per guest arriving at or after a cutoff time.
package mailtext

import (
	"fmt"
	"strings"

	"github.com/hostkit/rental-tools/internal/fields"
	"github.com/hostkit/rental-tools/internal/guest"
	"github.com/hostkit/rental-tools/internal/records"
)

const (
	DefaultCutoff = "20:00"
	Transport     = "Desconocido"
)

// Directory maps a room-type identifier to the apartment address.
type Directory map[string]string

// LoadDirectory reads the apartments table: identifier in the first column,
// address in the fourth. Rows with fewer than four fields or empty values are
// ignored.
func LoadDirectory(ds *records.Dataset) (Directory, error) {
	dir := make(Directory)
	for _, row := range ds.Rows {
		if len(row.Record) < 4 {
			continue
		}
		id := records.CleanField(row.Record.Field(0))
		address := records.CleanField(row.Record.Field(3))
		if id != "" && address != "" {
			dir[id] = address
		}
	}

	if len(dir) == 0 {
		return nil, &records.EmptyDatasetError{Source: ds.Source}
	}
	return dir, nil
}

// Result is the generated text plus the guests that were left out.
type Result struct {
	Text  string
	Count int
	Skips []records.Skip
}

// Generator formats arrival blocks.
type Generator struct {
	// Cutoff is the "H:MM" arrival time from which guests are included.
	Cutoff string
}

// Generate writes one block per entry whose arrival time is at or after the
// cutoff. Entries without a known address or with an unreadable arrival time
// are skipped.
func (g *Generator) Generate(dir Directory, entries []guest.Entry) (*Result, error) {
	cutoffText := g.Cutoff
	if cutoffText == "" {
		cutoffText = DefaultCutoff
	}
	cutoff, err := fields.ParseClock(cutoffText)
	if err != nil {
		return nil, fmt.Errorf("invalid cutoff: %w", err)
	}

	result := &Result{}
	var b strings.Builder

	for _, e := range entries {
		address, ok := dir[e.RoomID]
		if !ok {
			result.Skips = append(result.Skips, records.Skip{Line: e.Line, Err: &records.FieldParseError{
				Line:   e.Line,
				Field:  "room_id",
				Value:  e.RoomID,
				Reason: "no address for room",
			}})
			continue
		}

		arrival, err := fields.ParseClock(e.ArrivalTime)
		if err != nil {
			result.Skips = append(result.Skips, records.Skip{Line: e.Line, Err: &records.FieldParseError{
				Line:   e.Line,
				Field:  "arrival_time",
				Value:  e.ArrivalTime,
				Reason: err.Error(),
			}})
			continue
		}

		if arrival >= cutoff {
			writeBlock(&b, e, address)
			result.Count++
		}
	}

	if result.Count == 0 {
		result.Text = fmt.Sprintf("No hay huéspedes con llegada después de las %s", cutoffText)
	} else {
		result.Text = b.String()
	}

	return result, nil
}

func writeBlock(b *strings.Builder, e guest.Entry, address string) {
	fmt.Fprintf(b, "Nombre del huésped: %s\n", e.Name)
	fmt.Fprintf(b, "Teléfono del huésped: %s\n", e.Phone)
	fmt.Fprintf(b, "Nombre del apartamento: %s\n", e.RoomName)
	fmt.Fprintf(b, "Dirección del apartamento: %s\n", address)
	fmt.Fprintf(b, "Método de transporte: %s\n", Transport)
	fmt.Fprintf(b, "Día de llegada: %s\n", e.CheckIn)
	fmt.Fprintf(b, "Hora prevista de llegada: %s\n", e.ArrivalTime)
	b.WriteString("\n")
}
