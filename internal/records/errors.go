package records

import "fmt"

// MissingHeaderError reports that the header row, or a column required from it,
// could not be located.
type MissingHeaderError struct {
	Source string
	Marker string
	Column string
}

func (e *MissingHeaderError) Error() string {
	switch {
	case e.Column != "":
		return withSource(e.Source, fmt.Sprintf("column %q not found in header", e.Column))
	case e.Marker != "":
		return withSource(e.Source, fmt.Sprintf("header row starting with %q not found", e.Marker))
	default:
		return withSource(e.Source, "header row not found")
	}
}

// EmptyDatasetError reports that no usable data rows survived filtering.
type EmptyDatasetError struct {
	Source string
}

func (e *EmptyDatasetError) Error() string {
	return withSource(e.Source, "no usable records found")
}

// FieldParseError describes a single field that could not be interpreted.
// It is local to one record; the record is skipped and processing continues.
type FieldParseError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *FieldParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("record %d: %s %q: %s", e.Line, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("record %d: %s: %s", e.Line, e.Field, e.Reason)
}

// IOError wraps a failure to read an input file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *IOError) Unwrap() error {
	return e.Err
}

// Skip records a data row that was dropped and why.
type Skip struct {
	Line int
	Err  error
}

func withSource(source, msg string) string {
	if source == "" {
		return msg
	}
	return source + ": " + msg
}
