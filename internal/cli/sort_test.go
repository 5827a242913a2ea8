package cli

import (
	"testing"

	"github.com/hostkit/rental-tools/internal/guest"
)

func TestSortEntries(t *testing.T) {
	entries := func() []guest.Entry {
		return []guest.Entry{
			{Line: 2, Name: "Bruno", RoomName: "casa", CheckIn: "07/03/2024", ArrivalTime: "21:00"},
			{Line: 3, Name: "ana", RoomName: "Loft", CheckIn: "05/03/2024", ArrivalTime: "sin hora"},
			{Line: 4, Name: "Carla", RoomName: "Casa", CheckIn: "06/03/2024", ArrivalTime: "18:30"},
			{Line: 5, Name: "Diego", RoomName: "Ático", CheckIn: "fecha", ArrivalTime: "18:30"},
		}
	}

	tests := []struct {
		order SortOrder
		want  []int // lines
	}{
		{SortNone, []int{2, 3, 4, 5}},
		{SortByDate, []int{3, 4, 2, 5}},
		// Room names compare case-insensitively; equal rooms fall back to date.
		{SortByRoom, []int{4, 2, 3, 5}},
		{SortByName, []int{3, 2, 4, 5}},
		{SortByTime, []int{4, 5, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			got := entries()
			sortEntries(got, tt.order)

			for i, line := range tt.want {
				if got[i].Line != line {
					t.Errorf("sortEntries(%q) position %d = line %d, want %d", tt.order, i, got[i].Line, line)
				}
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{"", SortNone, false},
		{"Date", SortByDate, false},
		{" room ", SortByRoom, false},
		{"arrival", SortByTime, false},
		{"price", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSortOrder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSortOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSortOrder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
