package records

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestParseHTMLTable(t *testing.T) {
	doc := `<table>
  <thead><tr><th>ID</th><th>Check in</th><th>Habitaciones</th></tr></thead>
  <tbody>
    <tr><td>1</td><td>05/03/2024 14:30</td><td>Studio {12}</td></tr>
    <tr></tr>
    <tr><td>2</td><td> 06/03/2024 </td><td>Loft; planta 2</td></tr>
  </tbody>
</table>
<table><tr><td>ignored</td></tr></table>`

	got, err := ParseHTMLTable(stringsReader(doc))
	if err != nil {
		t.Fatalf("ParseHTMLTable() error = %v", err)
	}

	want := []Record{
		{"ID", "Check in", "Habitaciones"},
		{"1", "05/03/2024 14:30", "Studio {12}"},
		{"2", "06/03/2024", "Loft; planta 2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseHTMLTable() = %q, want %q", got, want)
	}
}
