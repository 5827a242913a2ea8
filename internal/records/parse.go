package records

import "strings"

// Parse tokenizes text with the tokenizer selected by opts.Mode.
func Parse(text string, opts Options) []Record {
	if opts.Mode == ModeSimple {
		return ParseSimple(text, opts.delimiter())
	}
	return ParseStrict(text, opts.delimiter())
}

// ParseStrict tokenizes text honouring quoted fields.
//
// A double quote toggles quoted mode and is never copied into the field. While
// quoted, the delimiter and line breaks are literal content. Outside quotes a
// '\n' or '\r' ends the record, but only a record that has collected a value or
// a field boundary is emitted, so "\r\n" and blank lines produce nothing.
// Doubled quotes are not unescaped: `""` toggles twice and yields nothing.
func ParseStrict(text string, delim rune) []Record {
	var (
		out      []Record
		current  Record
		value    strings.Builder
		inQuotes bool
	)

	pushField := func() {
		current = append(current, value.String())
		value.Reset()
	}
	pushRecord := func() {
		if value.Len() == 0 && len(current) == 0 {
			return
		}
		pushField()
		out = append(out, current)
		current = nil
	}

	for _, c := range text {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			pushField()
		case (c == '\n' || c == '\r') && !inQuotes:
			pushRecord()
		default:
			value.WriteRune(c)
		}
	}
	// Input without a trailing line break still yields its last record.
	pushRecord()

	return out
}

// ParseSimple splits text into lines and each line on delim, ignoring quotes
// while splitting. Every field is trimmed and loses its surrounding quotes.
// Blank lines are dropped.
func ParseSimple(text string, delim rune) []Record {
	var out []Record
	sep := string(delim)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, sep)
		rec := make(Record, len(parts))
		for i, p := range parts {
			rec[i] = CleanField(p)
		}
		out = append(out, rec)
	}

	return out
}
