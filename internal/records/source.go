package records

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads the whole file at path and decodes it as text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}

	text, err := Decode(data)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}

	return text, nil
}

// Decode converts raw file bytes to a string. A leading byte-order mark is
// honoured and removed; without one the bytes are read as UTF-8.
func Decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(out), nil
}

// Load reads, tokenizes and splits a file in one step.
func Load(path string, opts Options, policy HeaderPolicy) (*Dataset, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	var recs []Record
	if isHTMLExport(path, text) {
		recs, err = ParseHTMLTable(strings.NewReader(text))
		if err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
	} else {
		recs = Parse(text, opts)
	}

	return Split(recs, policy, filepath.Base(path))
}

// isHTMLExport detects spreadsheet exports that are really HTML tables.
func isHTMLExport(path, text string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}

	head := bytes.ToLower([]byte(strings.TrimSpace(text)))
	return bytes.HasPrefix(head, []byte("<")) && bytes.Contains(head, []byte("<table"))
}
