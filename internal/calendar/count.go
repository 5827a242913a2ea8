package calendar

import (
	"github.com/hostkit/rental-tools/internal/fields"
	"github.com/hostkit/rental-tools/internal/records"
)

// Header columns holding the dates counted for each series.
const (
	ArrivalColumn   = "Check in"
	DepartureColumn = "Check-out"
)

// DailyCount maps a YYYY-MM-DD date to the number of bookings on that day.
type DailyCount map[string]int

// Get returns the count for date, 0 when the date has no bookings.
func (d DailyCount) Get(date string) int {
	return d[date]
}

// Total returns the sum over all dates.
func (d DailyCount) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Count buckets the rows of ds by the date in column. Rows whose date does
// not parse are dropped and reported as skips; they never fail the count.
// A nil dataset yields an empty count.
func Count(ds *records.Dataset, column string) (DailyCount, []records.Skip, error) {
	counts := make(DailyCount)
	if ds == nil {
		return counts, nil, nil
	}

	pos, ok := fields.ResolveHeaderIndex(ds.Header, column)
	if !ok {
		return counts, nil, &records.MissingHeaderError{Source: ds.Source, Column: column}
	}

	var skips []records.Skip
	for _, row := range ds.Rows {
		raw := row.Record.Field(pos)
		date := fields.FormatISO(raw)
		if date == "" {
			skips = append(skips, records.Skip{Line: row.Line, Err: &records.FieldParseError{
				Line:   row.Line,
				Field:  column,
				Value:  raw,
				Reason: "invalid date",
			}})
			continue
		}
		counts[date]++
	}

	return counts, skips, nil
}
