// Package fields maps parsed records onto domain values.
//
// Columns are located either by a fixed position taken from the export layout
// or by name through a HeaderIndex built once per file. The normalizers in this
// package never fail loudly: dates that do not parse format to "", absent
// fields fall back to caller supplied defaults, and callers decide whether an
// empty result means the record should be skipped.
package fields
