package records

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTable is returned when an HTML export contains no <table> element.
var ErrNoTable = errors.New("no table found in HTML document")

// ParseHTMLTable reads the first table of an HTML document. Each <tr> becomes
// a Record of its trimmed <th>/<td> texts; rows without cells are dropped.
func ParseHTMLTable(r io.Reader) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	out := make([]Record, 0)
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var rec Record
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			rec = append(rec, strings.TrimSpace(cell.Text()))
		})
		if len(rec) > 0 {
			out = append(out, rec)
		}
	})

	return out, nil
}
