package contacts

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hostkit/rental-tools/internal/records"
)

// row is the Google Contacts CSV layout.
type row struct {
	Name               string `csv:"Name"`
	GivenName          string `csv:"Given Name"`
	AdditionalName     string `csv:"Additional Name"`
	FamilyName         string `csv:"Family Name"`
	YomiName           string `csv:"Yomi Name"`
	GivenNameYomi      string `csv:"Given Name Yomi"`
	AdditionalNameYomi string `csv:"Additional Name Yomi"`
	FamilyNameYomi     string `csv:"Family Name Yomi"`
	NamePrefix         string `csv:"Name Prefix"`
	NameSuffix         string `csv:"Name Suffix"`
	Initials           string `csv:"Initials"`
	Nickname           string `csv:"Nickname"`
	ShortName          string `csv:"Short Name"`
	MaidenName         string `csv:"Maiden Name"`
	Birthday           string `csv:"Birthday"`
	Gender             string `csv:"Gender"`
	Location           string `csv:"Location"`
	BillingInformation string `csv:"Billing Information"`
	DirectoryServer    string `csv:"Directory Server"`
	Mileage            string `csv:"Mileage"`
	Occupation         string `csv:"Occupation"`
	Hobby              string `csv:"Hobby"`
	Sensitivity        string `csv:"Sensitivity"`
	Priority           string `csv:"Priority"`
	Subject            string `csv:"Subject"`
	Notes              string `csv:"Notes"`
	Language           string `csv:"Language"`
	Photo              string `csv:"Photo"`
	GroupMembership    string `csv:"Group Membership"`
	Phone1Type         string `csv:"Phone 1 - Type"`
	Phone1Value        string `csv:"Phone 1 - Value"`
}

// Write encodes contacts as a Google Contacts CSV file. The Name column of
// every data row is quoted.
func Write(w io.Writer, contacts []Contact) error {
	if len(contacts) == 0 {
		return &records.EmptyDatasetError{Source: "contacts"}
	}

	rows := make([]*row, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, &row{
			Name:            c.Name,
			GroupMembership: GroupMembership,
			Phone1Type:      PhoneType,
			Phone1Value:     c.Phone,
		})
	}

	bom := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := newQuotingWriter(bom, 0)

	if err := gocsv.MarshalCSV(&rows, cw); err != nil {
		return fmt.Errorf("encoding contacts: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing contacts: %w", err)
	}
	if err := bom.Close(); err != nil {
		return fmt.Errorf("writing contacts: %w", err)
	}

	return nil
}

// quotingWriter is a gocsv.CSVWriter producing comma-separated lines ending in
// "\n". Fields are quoted when they need it, and the configured columns are
// always quoted in data rows.
type quotingWriter struct {
	w      *bufio.Writer
	always map[int]bool
	rows   int
	err    error
}

func newQuotingWriter(w io.Writer, alwaysQuoted ...int) *quotingWriter {
	always := make(map[int]bool, len(alwaysQuoted))
	for _, i := range alwaysQuoted {
		always[i] = true
	}
	return &quotingWriter{w: bufio.NewWriter(w), always: always}
}

func (q *quotingWriter) Write(fields []string) error {
	if q.err != nil {
		return q.err
	}

	for i, f := range fields {
		if i > 0 {
			q.w.WriteByte(',')
		}
		// The first row is the header and is written as is.
		if (q.rows > 0 && q.always[i]) || strings.ContainsAny(f, ",\"\r\n") {
			q.w.WriteByte('"')
			q.w.WriteString(strings.ReplaceAll(f, `"`, `""`))
			q.w.WriteByte('"')
		} else {
			q.w.WriteString(f)
		}
	}
	_, q.err = q.w.WriteString("\n")
	q.rows++

	return q.err
}

func (q *quotingWriter) Flush() {
	if err := q.w.Flush(); err != nil && q.err == nil {
		q.err = err
	}
}

func (q *quotingWriter) Error() error {
	return q.err
}
