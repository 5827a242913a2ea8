package contacts

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostkit/rental-tools/internal/fields"
	"github.com/hostkit/rental-tools/internal/guest"
	"github.com/hostkit/rental-tools/internal/records"
)

const (
	GroupMembership = "* myContacts"
	PhoneType       = "Mobile"
)

// Contact is one entry of the generated import file.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Eligible filters the entries that can become contacts: a parseable
// check-in date and a real guest name are required.
func Eligible(entries []guest.Entry) ([]guest.Entry, []records.Skip) {
	out := make([]guest.Entry, 0, len(entries))
	var skips []records.Skip

	for _, e := range entries {
		if fields.FormatCompact(e.CheckIn) == "" {
			skips = append(skips, records.Skip{Line: e.Line, Err: &records.FieldParseError{
				Line:   e.Line,
				Field:  "check_in",
				Value:  e.CheckIn,
				Reason: "invalid date",
			}})
			continue
		}
		if e.Name == "" || e.Name == guest.ContactDefaults.Name {
			skips = append(skips, records.Skip{Line: e.Line, Err: &records.FieldParseError{
				Line:   e.Line,
				Field:  "name",
				Reason: "missing guest name",
			}})
			continue
		}
		out = append(out, e)
	}

	return out, skips
}

// FromEntries builds one contact per eligible booking.
func FromEntries(entries []guest.Entry) ([]Contact, []records.Skip) {
	eligible, skips := Eligible(entries)

	out := make([]Contact, 0, len(eligible))
	for _, e := range eligible {
		room := e.RoomName
		if room == "" {
			room = guest.ContactDefaults.Room
		}
		out = append(out, Contact{
			Name:  fmt.Sprintf("%s - %s - %s", fields.FormatCompact(e.CheckIn), room, e.Name),
			Phone: fields.NormalizePhone(e.Phone),
		})
	}

	return out, skips
}

// FromGroups builds one contact per merged guest, listing every room booked.
func FromGroups(groups []*guest.Group) []Contact {
	out := make([]Contact, 0, len(groups))
	for _, g := range groups {
		rooms := strings.Join(g.Rooms, ", ")
		if rooms == "" {
			rooms = guest.ContactDefaults.Room
		}
		out = append(out, Contact{
			Name:  fmt.Sprintf("%s - %s - %s", g.CheckIn, rooms, g.Name),
			Phone: fields.NormalizePhone(g.Phone),
		})
	}
	return out
}

// SuggestName proposes a file name from the check-in range of the entries,
// e.g. "240301_contactos_240331.csv", falling back to today's date.
func SuggestName(entries []guest.Entry, now time.Time) string {
	var first, last string
	for _, e := range entries {
		d := fields.FormatCompact(e.CheckIn)
		if d == "" {
			continue
		}
		if first == "" || d < first {
			first = d
		}
		if last == "" || d > last {
			last = d
		}
	}

	if first != "" {
		return fmt.Sprintf("%s_contactos_%s.csv", first, last)
	}
	return fmt.Sprintf("contactos_%s.csv", now.Format(fields.CompactLayout))
}
