package guest

import (
	"github.com/hostkit/rental-tools/internal/fields"
	"github.com/hostkit/rental-tools/internal/records"
)

// Entry is one booking as seen by the contacts and mail generators.
type Entry struct {
	Line        int    `json:"line"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	RoomName    string `json:"room_name"`
	RoomID      string `json:"room_id,omitempty"`
	CheckIn     string `json:"check_in"`
	ArrivalTime string `json:"arrival_time"`
}

// Layout lists the booking export columns used to build entries.
type Layout struct {
	CheckIn      fields.Column
	Room         fields.Column
	Phone        fields.Column
	Name         fields.Column
	NameFallback fields.Column
	ArrivalTime  fields.Column
	RoomType     fields.Column
}

// DefaultLayout returns the column names and positions of the
// property-management booking export.
func DefaultLayout() Layout {
	return Layout{
		CheckIn:      fields.Column{Name: "Check in", Position: 2},
		Room:         fields.Column{Name: "Habitaciones", Position: 6},
		Phone:        fields.Column{Name: "Teléfono", Position: 14},
		Name:         fields.Column{Name: "Referencia", Position: 18},
		NameFallback: fields.Column{Name: "Huéspedes", Position: 3},
		ArrivalTime:  fields.Column{Name: "Hora de llegada", Position: 47},
		RoomType:     fields.Column{Name: "ID Tipologie", Position: 61},
	}
}

// Positions holds a Layout resolved against one file's header.
type Positions struct {
	CheckIn      int
	Room         int
	Phone        int
	Name         int
	NameFallback int
	ArrivalTime  int
	RoomType     int
}

// Resolve looks every column up in header once.
func (l Layout) Resolve(header records.Record) Positions {
	idx := fields.NewHeaderIndex(header)
	return Positions{
		CheckIn:      l.CheckIn.Resolve(idx),
		Room:         l.Room.Resolve(idx),
		Phone:        l.Phone.Resolve(idx),
		Name:         l.Name.Resolve(idx),
		NameFallback: l.NameFallback.Resolve(idx),
		ArrivalTime:  l.ArrivalTime.Resolve(idx),
		RoomType:     l.RoomType.Resolve(idx),
	}
}

// Defaults are the fixed strings used when a field is absent.
type Defaults struct {
	Name        string
	Phone       string
	Room        string
	ArrivalTime string
}

var (
	// MailDefaults are used by the arrival mail text.
	MailDefaults = Defaults{
		Name:        "No especificado",
		Phone:       "No especificado",
		Room:        "No especificado",
		ArrivalTime: "15:00",
	}

	// ContactDefaults are used by the contacts export.
	ContactDefaults = Defaults{
		Name:        "Sin nombre",
		Room:        "Sin apartamento",
		ArrivalTime: "15:00",
	}
)

// Project maps one record onto an Entry. It never fails: short records and
// empty fields fall back to def. RoomID is empty when the room-type field
// carries no {id} token.
func Project(rec records.Record, pos Positions, def Defaults) Entry {
	name := fields.ExtractField(rec, pos.Name, "")
	if name == "" {
		name = fields.ExtractField(rec, pos.NameFallback, def.Name)
	}

	roomID, _ := fields.ExtractRoomID(fields.ExtractField(rec, pos.RoomType, ""))

	return Entry{
		Name:        name,
		Phone:       fields.ExtractField(rec, pos.Phone, def.Phone),
		RoomName:    fields.ExtractField(rec, pos.Room, def.Room),
		RoomID:      roomID,
		CheckIn:     fields.ExtractField(rec, pos.CheckIn, ""),
		ArrivalTime: fields.ExtractField(rec, pos.ArrivalTime, def.ArrivalTime),
	}
}

// ExtractOptions controls Extract.
type ExtractOptions struct {
	Layout   Layout
	Defaults Defaults

	// RequireRoomID skips rows without a room-type {id} token.
	RequireRoomID bool
}

// Extract projects every data row of ds. Rows that cannot yield a usable
// entry are returned as skips instead of aborting the batch.
func Extract(ds *records.Dataset, opts ExtractOptions) ([]Entry, []records.Skip) {
	pos := opts.Layout.Resolve(ds.Header)

	entries := make([]Entry, 0, len(ds.Rows))
	var skips []records.Skip

	for _, row := range ds.Rows {
		if opts.RequireRoomID {
			if pos.RoomType == fields.NotFound || pos.RoomType >= len(row.Record) {
				skips = append(skips, records.Skip{Line: row.Line, Err: &records.FieldParseError{
					Line:   row.Line,
					Field:  "room_type",
					Reason: "not enough columns",
				}})
				continue
			}

			raw := records.CleanField(row.Record.Field(pos.RoomType))
			if _, ok := fields.ExtractRoomID(raw); !ok {
				skips = append(skips, records.Skip{Line: row.Line, Err: &records.FieldParseError{
					Line:   row.Line,
					Field:  "room_type",
					Value:  raw,
					Reason: "no {id} token",
				}})
				continue
			}
		}

		entry := Project(row.Record, pos, opts.Defaults)
		entry.Line = row.Line
		entries = append(entries, entry)
	}

	return entries, skips
}
