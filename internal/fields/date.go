package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hostkit/rental-tools/internal/records"
)

const (
	CompactLayout = "060102"
	ISOLayout     = "2006-01-02"
)

// datePattern matches D/M/Y with a two to four digit year.
var datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)

// ParseDate parses "D/M/Y" or "DD/MM/YYYY", optionally followed by a space and
// a time that is discarded. Two and three digit years keep their last two
// digits and are taken as 20YY.
// Returns time.Time{} (zero value) if parsing fails.
func ParseDate(s string) time.Time {
	s = records.CleanField(s)
	if s == "" {
		return time.Time{}
	}

	// Drop the time component, e.g. "5/3/24 14:30"
	s, _, _ = strings.Cut(s, " ")

	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	yearText := m[3]
	if len(yearText) < 4 {
		yearText = yearText[len(yearText)-2:]
	}
	year, _ := strconv.Atoi(yearText)
	if len(yearText) == 2 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow; 31/02 must not become 2 or 3 March.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}
	}

	return t
}

// FormatCompact reformats a booking date as YYMMDD, or "" when it does not parse.
// The compact form sorts lexicographically in calendar order.
func FormatCompact(s string) string {
	t := ParseDate(s)
	if t.IsZero() {
		return ""
	}
	return t.Format(CompactLayout)
}

// FormatISO reformats a booking date as YYYY-MM-DD, or "" when it does not parse.
func FormatISO(s string) string {
	t := ParseDate(s)
	if t.IsZero() {
		return ""
	}
	return t.Format(ISOLayout)
}

// ParseClock converts "H:MM" (seconds are ignored) into minutes since midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid time: %s", s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", s)
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || minute < 0 || minute > 59 {
			return 0, fmt.Errorf("invalid minute: %s", s)
		}
	}

	return hour*60 + minute, nil
}
