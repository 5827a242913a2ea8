// Package records turns semicolon-delimited booking exports into ordered records.
//
// Two tokenizers are provided. The strict tokenizer walks the text one character
// at a time and honours quoted fields that contain the delimiter or line breaks.
// The simple tokenizer splits each physical line on the delimiter and strips the
// surrounding quotes, which is enough for exports whose fields never embed the
// delimiter. Callers pick one through Options.Mode.
//
// Split locates the header row of a parsed file and returns the data rows that
// follow it as a Dataset. Structural problems are reported as typed errors
// (MissingHeaderError, EmptyDatasetError, IOError) so commands can abort the
// whole file, while per-record problems are carried as Skip values.
package records
