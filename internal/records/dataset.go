package records

// HeaderPolicy describes how to find the header row and which rows count as data.
type HeaderPolicy struct {
	// Marker is the cleaned first-field value identifying the header row.
	// Empty means the first record is the header.
	Marker string

	// MinFields drops data rows with fewer fields. Zero disables the check.
	MinFields int
}

// Row is a data record together with its 1-based position among the parsed records.
type Row struct {
	Line   int
	Record Record
}

// Dataset is a parsed file split into header and data rows.
type Dataset struct {
	Source     string
	Header     Record
	HeaderLine int
	Rows       []Row
}

// Split locates the header in recs and collects the data rows that follow it.
// Records preceding a marker header are ignored.
func Split(recs []Record, policy HeaderPolicy, source string) (*Dataset, error) {
	if len(recs) == 0 {
		return nil, &EmptyDatasetError{Source: source}
	}

	headerAt := -1
	for i, rec := range recs {
		if policy.Marker == "" || CleanField(rec.Field(0)) == policy.Marker {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, &MissingHeaderError{Source: source, Marker: policy.Marker}
	}

	ds := &Dataset{
		Source:     source,
		Header:     recs[headerAt],
		HeaderLine: headerAt + 1,
		Rows:       make([]Row, 0, len(recs)-headerAt-1),
	}

	for i := headerAt + 1; i < len(recs); i++ {
		rec := recs[i]
		if rec.IsBlank() {
			continue
		}
		// Concatenated exports repeat the header row.
		if policy.Marker != "" && CleanField(rec.Field(0)) == policy.Marker {
			continue
		}
		if policy.MinFields > 0 && len(rec) < policy.MinFields {
			continue
		}
		ds.Rows = append(ds.Rows, Row{Line: i + 1, Record: rec})
	}

	if len(ds.Rows) == 0 {
		return nil, &EmptyDatasetError{Source: source}
	}

	return ds, nil
}
