package fields

import (
	"strings"

	"github.com/hostkit/rental-tools/internal/records"
)

// NotFound is the position reported for columns that cannot be resolved.
const NotFound = -1

// HeaderIndex maps a column name to its position in the header record.
type HeaderIndex map[string]int

// NewHeaderIndex indexes the cleaned names of header. When a name repeats,
// the first position wins.
func NewHeaderIndex(header records.Record) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, name := range header {
		name = records.CleanField(name)
		if name == "" {
			continue
		}
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}

// Lookup returns the position of name. Matching is exact and case-sensitive
// after trimming surrounding whitespace.
func (h HeaderIndex) Lookup(name string) (int, bool) {
	pos, ok := h[strings.TrimSpace(name)]
	return pos, ok
}

// ResolveHeaderIndex finds fieldName in a header record.
func ResolveHeaderIndex(header records.Record, fieldName string) (int, bool) {
	return NewHeaderIndex(header).Lookup(fieldName)
}

// Column names a field of the booking export. Name is tried against the
// header first; Position is the fixed fallback for exports whose header does
// not carry the name.
type Column struct {
	Name     string
	Position int
}

// Resolve returns the column's position for a file with the given header index,
// or NotFound when neither the name nor a fallback position is available.
func (c Column) Resolve(idx HeaderIndex) int {
	if c.Name != "" {
		if pos, ok := idx.Lookup(c.Name); ok {
			return pos
		}
	}
	if c.Position < 0 {
		return NotFound
	}
	return c.Position
}

// ExtractField returns the cleaned value at pos, or def when pos is out of
// range or the value is empty after trimming and quote stripping.
func ExtractField(rec records.Record, pos int, def string) string {
	v := records.CleanField(rec.Field(pos))
	if v == "" {
		return def
	}
	return v
}
