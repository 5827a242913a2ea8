package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hostkit/rental-tools/internal/fields"
)

// MonthNames are the Spanish month names, January first.
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// WeekdayNames are the Spanish short weekday labels, Sunday first.
var WeekdayNames = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Day is one cell of the month view.
type Day struct {
	Date          string `json:"date"`
	Day           int    `json:"day"`
	Arrivals      int    `json:"arrivals"`
	Departures    int    `json:"departures"`
	ArrivalTier   int    `json:"arrival_tier"`
	DepartureTier int    `json:"departure_tier"`
	Today         bool   `json:"today,omitempty"`
}

// Month is a Sunday-first grid of days. Nil cells pad the first and last week.
type Month struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	Name       string     `json:"name"`
	Weeks      [][]*Day   `json:"weeks"`
	Arrivals   int        `json:"arrivals"`
	Departures int        `json:"departures"`
}

// Days returns the non-padding cells in date order.
func (m *Month) Days() []*Day {
	var out []*Day
	for _, week := range m.Weeks {
		for _, d := range week {
			if d != nil {
				out = append(out, d)
			}
		}
	}
	return out
}

// Build lays out the given month with the per-day counts of both series.
// today marks the matching cell, if any.
func Build(year int, month time.Month, arrivals, departures DailyCount, today time.Time) *Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	m := &Month{
		Year:  year,
		Month: month,
		Name:  MonthNames[month-1],
	}

	week := make([]*Day, int(first.Weekday()))
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := date.Format(fields.ISOLayout)

		d := &Day{
			Date:       key,
			Day:        day,
			Arrivals:   arrivals.Get(key),
			Departures: departures.Get(key),
			Today:      today.Year() == year && today.Month() == month && today.Day() == day,
		}
		d.ArrivalTier = Tier(d.Arrivals)
		d.DepartureTier = Tier(d.Departures)

		m.Arrivals += d.Arrivals
		m.Departures += d.Departures

		week = append(week, d)
		if len(week) == 7 {
			m.Weeks = append(m.Weeks, week)
			week = make([]*Day, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		m.Weeks = append(m.Weeks, week)
	}

	return m
}

// DefaultMonth is the month offered first: the current one, or the next one
// once the current month is past its 15th day.
func DefaultMonth(now time.Time) (int, time.Month) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if now.Day() > 15 {
		first = first.AddDate(0, 1, 0)
	}
	return first.Year(), first.Month()
}

// ParseMonth accepts a month number (1-12) or a Spanish or English month
// name, full or abbreviated to three letters.
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("month cannot be empty")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month: %s", s)
		}
		return time.Month(n), nil
	}

	for i, name := range MonthNames {
		es := strings.ToLower(name)
		en := strings.ToLower(time.Month(i + 1).String())
		if s == es || s == en || s == es[:3] || s == en[:3] {
			return time.Month(i + 1), nil
		}
	}

	return 0, fmt.Errorf("invalid month: %s", s)
}
