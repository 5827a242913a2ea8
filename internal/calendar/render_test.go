package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func sampleMonth() *Month {
	arrivals := DailyCount{"2024-03-05": 2, "2024-03-20": 36}
	departures := DailyCount{"2024-03-08": 3}
	return Build(2024, time.March, arrivals, departures, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleMonth()); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	wantContains := []string{
		"Marzo 2024",
		"Dom",
		"Sáb",
		" 5 +2 -0",
		" 8 +0 -3",
		"Llegadas: 38  Salidas: 3",
	}
	for _, want := range wantContains {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText() output missing %q\n%s", want, out)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleMonth()); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse HTML: %v", err)
	}

	if got := doc.Find("h1.month-title").Text(); got != "Marzo 2024" {
		t.Errorf("title = %q, want %q", got, "Marzo 2024")
	}
	if got := doc.Find("table.calendar-table thead th").Length(); got != 7 {
		t.Errorf("got %d weekday headers, want 7", got)
	}
	if got := doc.Find("div.day-cell").Length(); got != 31 {
		t.Errorf("got %d day cells, want 31", got)
	}
	if got := doc.Find("td.empty-day").Length(); got != 11 {
		t.Errorf("got %d empty cells, want 11", got)
	}
	if got := doc.Find("td.today div.day-cell").AttrOr("data-date", ""); got != "2024-03-05" {
		t.Errorf("today cell = %q, want 2024-03-05", got)
	}

	busy := doc.Find(`div.day-cell[data-date="2024-03-20"] .arrival-container`)
	if got := busy.Find(".cell-count").Text(); got != "36" {
		t.Errorf("arrival count = %q, want 36", got)
	}
	if style := busy.AttrOr("style", ""); !strings.Contains(style, ArrivalColors[7]) {
		t.Errorf("arrival style = %q, want colour %s", style, ArrivalColors[7])
	}
	if got := busy.Find(".cell-label").Text(); got != ArrivalLabel {
		t.Errorf("arrival label = %q, want %q", got, ArrivalLabel)
	}

	quiet := doc.Find(`div.day-cell[data-date="2024-03-01"] .departure-container`)
	if quiet.Find(".cell-label").Length() != 0 {
		t.Error("zero count cell should have no label")
	}
	if style := quiet.AttrOr("style", ""); !strings.Contains(style, DepartureColors[0]) {
		t.Errorf("departure style = %q, want colour %s", style, DepartureColors[0])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleMonth()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 32 {
		t.Fatalf("got %d lines, want header + 31", len(lines))
	}
	if lines[0] != "date,arrivals,departures" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[5] != "2024-03-05,2,0" {
		t.Errorf("row 5 = %q, want %q", lines[5], "2024-03-05,2,0")
	}
	if lines[8] != "2024-03-08,0,3" {
		t.Errorf("row 8 = %q, want %q", lines[8], "2024-03-08,0,3")
	}
}
