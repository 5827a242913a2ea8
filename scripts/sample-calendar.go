package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hostkit/rental-tools/internal/calendar"
	"github.com/hostkit/rental-tools/internal/fields"
)

// Writes a month whose days walk through every colour tier, to check the
// HTML styling and the .ics import by eye.
func main() {
	now := time.Now()
	year, month := calendar.DefaultMonth(now)

	arrivals := make(calendar.DailyCount)
	departures := make(calendar.DailyCount)
	for day := 1; day <= 28; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(fields.ISOLayout)
		arrivals[date] = (day - 1) * 5 / 3
		departures[date] = (28 - day) * 5 / 3
	}

	m := calendar.Build(year, month, arrivals, departures, now)

	f, err := os.Create("sample-calendar.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	if err := calendar.WriteHTML(f, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing HTML: %v\n", err)
		os.Exit(1)
	}
	f.Close() // nolint:errcheck

	if err := os.WriteFile("sample-calendar.ics", []byte(calendar.GenerateICS(m, now)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated sample-calendar.html and sample-calendar.ics for %s %d\n\n", m.Name, m.Year)
	fmt.Println("Open the HTML file in a browser, or import the .ics into a calendar app.")
	fmt.Println()
	calendar.WriteText(os.Stdout, m) // nolint:errcheck
}
