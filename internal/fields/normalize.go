package fields

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var roomIDPattern = regexp.MustCompile(`\{(\d+)\}`)

// NormalizePhone keeps only digits and a leading '+'.
// "+34 612-345 678" becomes "+34612345678".
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	if strings.HasPrefix(s, "+") {
		b.WriteByte('+')
	}
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// TrimPhone only trims surrounding whitespace. The grouping key uses this
// form so that differently formatted numbers stay distinct.
func TrimPhone(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeName builds a grouping key from a guest name: lowercase, without
// ';', ',' or '"', and with whitespace runs collapsed to one space.
// It is never meant for display.
func NormalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case ';', ',', '"':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// DisplayName recapitalizes a name word by word for display.
func DisplayName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return cases.Title(language.Spanish).String(s)
}

// ExtractRoomID returns the digits of the first {digits} token in s.
// "Studio {1234} Deluxe" yields "1234".
func ExtractRoomID(s string) (string, bool) {
	m := roomIDPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
