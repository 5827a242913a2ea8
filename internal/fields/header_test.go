package fields

import (
	"testing"

	"github.com/hostkit/rental-tools/internal/records"
)

func TestResolveHeaderIndex(t *testing.T) {
	header := records.Record{"ID", " Check in ", `"Check-out"`, "check in", "Check in"}

	tests := []struct {
		name    string
		field   string
		wantPos int
		wantOK  bool
	}{
		{name: "trimmed match", field: "Check in", wantPos: 1, wantOK: true},
		{name: "quoted header cell", field: "Check-out", wantPos: 2, wantOK: true},
		{name: "case sensitive", field: "CHECK IN", wantOK: false},
		{name: "lookup name is trimmed", field: "  ID ", wantPos: 0, wantOK: true},
		{name: "missing", field: "Teléfono", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := ResolveHeaderIndex(header, tt.field)
			if ok != tt.wantOK {
				t.Fatalf("ResolveHeaderIndex(%q) ok = %v, want %v", tt.field, ok, tt.wantOK)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("ResolveHeaderIndex(%q) = %d, want %d", tt.field, pos, tt.wantPos)
			}
		})
	}
}

func TestColumn_Resolve(t *testing.T) {
	idx := NewHeaderIndex(records.Record{"ID", "Habitaciones", "Teléfono"})

	tests := []struct {
		name   string
		column Column
		want   int
	}{
		{name: "by name", column: Column{Name: "Teléfono", Position: 14}, want: 2},
		{name: "positional fallback", column: Column{Name: "Referencia", Position: 18}, want: 18},
		{name: "no name", column: Column{Position: 3}, want: 3},
		{name: "not found", column: Column{Name: "Hora", Position: NotFound}, want: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.column.Resolve(idx); got != tt.want {
				t.Errorf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractField(t *testing.T) {
	rec := records.Record{"1", `  "Ana"  `, "", `""`}

	tests := []struct {
		pos  int
		want string
	}{
		{pos: 0, want: "1"},
		{pos: 1, want: "Ana"},
		{pos: 2, want: "n/a"},
		{pos: 3, want: "n/a"},
		{pos: 9, want: "n/a"},
		{pos: NotFound, want: "n/a"},
	}

	for _, tt := range tests {
		if got := ExtractField(rec, tt.pos, "n/a"); got != tt.want {
			t.Errorf("ExtractField(rec, %d) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}
