package contacts

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/hostkit/rental-tools/internal/guest"
	"github.com/hostkit/rental-tools/internal/records"
)

func TestFromEntries(t *testing.T) {
	entries := []guest.Entry{
		{Line: 2, Name: "Ana López", Phone: "+34 612-345 678", RoomName: "Studio Sol", CheckIn: "5/3/24 14:30"},
		{Line: 3, Name: "Luis", Phone: "600", RoomName: "Sin apartamento", CheckIn: "06/03/2024"},
		{Line: 4, Name: "Marta", CheckIn: "sin fecha"},
		{Line: 5, Name: "Sin nombre", CheckIn: "07/03/2024"},
	}

	got, skips := FromEntries(entries)

	want := []Contact{
		{Name: "240305 - Studio Sol - Ana López", Phone: "+34612345678"},
		{Name: "240306 - Sin apartamento - Luis", Phone: "600"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromEntries() = %+v, want %+v", got, want)
	}

	if len(skips) != 2 {
		t.Fatalf("len(skips) = %d, want 2", len(skips))
	}
	var fieldErr *records.FieldParseError
	if !errors.As(skips[0].Err, &fieldErr) || fieldErr.Field != "check_in" {
		t.Errorf("skips[0] = %v, want check_in error", skips[0].Err)
	}
	if !errors.As(skips[1].Err, &fieldErr) || fieldErr.Field != "name" {
		t.Errorf("skips[1] = %v, want name error", skips[1].Err)
	}
}

func TestFromGroups(t *testing.T) {
	groups := guest.GroupEntries([]guest.Entry{
		{Name: "ana lópez", Phone: "+34 600", RoomName: "Studio Sol", CheckIn: "10/03/2024"},
		{Name: "Ana López", Phone: "+34 600", RoomName: "Loft Luna", CheckIn: "05/03/2024"},
	})

	got := FromGroups(groups)
	want := []Contact{{Name: "240305 - Studio Sol, Loft Luna - Ana López", Phone: "+34600"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromGroups() = %+v, want %+v", got, want)
	}
}

func TestSuggestName(t *testing.T) {
	now := time.Date(2025, time.July, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries []guest.Entry
		want    string
	}{
		{
			name: "range of check-in dates",
			entries: []guest.Entry{
				{CheckIn: "15/03/2024"},
				{CheckIn: "2/3/24"},
				{CheckIn: "bad"},
				{CheckIn: "28/03/2024 10:00"},
			},
			want: "240302_contactos_240328.csv",
		},
		{
			name:    "no valid dates",
			entries: []guest.Entry{{CheckIn: ""}},
			want:    "contactos_250709.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestName(tt.entries, now); got != tt.want {
				t.Errorf("SuggestName() = %q, want %q", got, tt.want)
			}
		})
	}
}
