package records

import (
	"fmt"
	"strings"
)

// DefaultDelimiter is the separator used by the property-management exports.
const DefaultDelimiter = ';'

// Record is one parsed row: an ordered sequence of field strings.
type Record []string

// Field returns the raw value at index i, or "" when i is out of range.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// IsBlank reports whether every field is empty once cleaned.
func (r Record) IsBlank() bool {
	for _, f := range r {
		if CleanField(f) != "" {
			return false
		}
	}
	return true
}

// Mode selects the tokenizer used by Parse.
type Mode string

const (
	ModeStrict Mode = "strict"
	ModeSimple Mode = "simple"
)

// ParseMode converts a user supplied mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStrict, "":
		return ModeStrict, nil
	case ModeSimple:
		return ModeSimple, nil
	default:
		return "", fmt.Errorf("invalid parse mode: %s (must be 'strict' or 'simple')", s)
	}
}

// Options controls tokenization.
type Options struct {
	// Delimiter separates fields; zero means DefaultDelimiter.
	Delimiter rune

	// Mode picks the tokenizer; empty means ModeStrict.
	Mode Mode
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// CleanField trims whitespace and strips one pair of surrounding quote characters.
func CleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
