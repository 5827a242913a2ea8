package calendar

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// Series labels.
const (
	ArrivalLabel   = "Llegadas"
	DepartureLabel = "Salidas"
)

// WriteText writes the month as a fixed-width text grid. Each cell shows the
// day number followed by "+arrivals -departures" when either is non-zero.
func WriteText(w io.Writer, m *Month) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d\n", m.Name, m.Year)
	for _, name := range WeekdayNames {
		fmt.Fprintf(&b, "%-12s", name)
	}
	b.WriteString("\n")

	for _, week := range m.Weeks {
		for _, d := range week {
			cell := ""
			if d != nil {
				cell = fmt.Sprintf("%2d", d.Day)
				if d.Arrivals > 0 || d.Departures > 0 {
					cell += fmt.Sprintf(" +%d -%d", d.Arrivals, d.Departures)
				}
			}
			fmt.Fprintf(&b, "%-12s", cell)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s: %d  %s: %d\n", ArrivalLabel, m.Arrivals, DepartureLabel, m.Departures)

	_, err := io.WriteString(w, b.String())
	return err
}

type htmlCell struct {
	*Day
	ArrivalStyle   template.CSS
	DepartureStyle template.CSS
}

type htmlPage struct {
	*Month
	Weekdays       [7]string
	Weeks          [][]*htmlCell
	ArrivalLabel   string
	DepartureLabel string
}

var monthTemplate = template.Must(template.New("month").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Name}} {{.Year}}</title>
</head>
<body>
<h1 class="month-title">{{.Name}} {{.Year}}</h1>
<table class="calendar-table">
<thead><tr>{{range .Weekdays}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Weeks}}
<tr>
{{- range .}}
{{- if .}}
<td{{if .Today}} class="today"{{end}}>
<div class="day-cell" data-date="{{.Date}}">
<span class="day-number">{{.Day.Day}}</span>
<div class="arrival-container" style="{{.ArrivalStyle}}"><span class="cell-count">{{.Arrivals}}</span>{{if .Arrivals}} <span class="cell-label">{{$.ArrivalLabel}}</span>{{end}}</div>
<div class="departure-container" style="{{.DepartureStyle}}"><span class="cell-count">{{.Departures}}</span>{{if .Departures}} <span class="cell-label">{{$.DepartureLabel}}</span>{{end}}</div>
</div>
</td>
{{- else}}
<td class="empty-day"></td>
{{- end}}
{{- end}}
</tr>
{{- end}}
</tbody>
</table>
<p class="totals">{{.ArrivalLabel}}: {{.Month.Arrivals}} · {{.DepartureLabel}}: {{.Month.Departures}}</p>
</body>
</html>
`))

// WriteHTML writes the month as a standalone HTML page with one coloured
// cell per day.
func WriteHTML(w io.Writer, m *Month) error {
	page := htmlPage{
		Month:          m,
		Weekdays:       WeekdayNames,
		ArrivalLabel:   ArrivalLabel,
		DepartureLabel: DepartureLabel,
	}

	for _, week := range m.Weeks {
		row := make([]*htmlCell, len(week))
		for i, d := range week {
			if d == nil {
				continue
			}
			row[i] = &htmlCell{
				Day:            d,
				ArrivalStyle:   template.CSS("background-color: " + ArrivalColors[d.ArrivalTier]),
				DepartureStyle: template.CSS("background-color: " + DepartureColors[d.DepartureTier]),
			}
		}
		page.Weeks = append(page.Weeks, row)
	}

	return monthTemplate.Execute(w, page)
}

type csvDay struct {
	Date       string `csv:"date"`
	Arrivals   int    `csv:"arrivals"`
	Departures int    `csv:"departures"`
}

// WriteCSV writes one date,arrivals,departures row per day of the month.
func WriteCSV(w io.Writer, m *Month) error {
	days := m.Days()
	rows := make([]*csvDay, 0, len(days))
	for _, d := range days {
		rows = append(rows, &csvDay{Date: d.Date, Arrivals: d.Arrivals, Departures: d.Departures})
	}
	return gocsv.Marshal(&rows, w)
}
