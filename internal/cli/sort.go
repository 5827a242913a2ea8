package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hostkit/rental-tools/internal/fields"
	"github.com/hostkit/rental-tools/internal/guest"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortNone   SortOrder = ""
	SortByDate SortOrder = "date"
	SortByRoom SortOrder = "room"
	SortByName SortOrder = "name"
	SortByTime SortOrder = "arrival"
)

func parseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case SortNone, SortByDate, SortByRoom, SortByName, SortByTime:
		return order, nil
	}
	return "", fmt.Errorf("invalid sort: %s (must be 'date', 'room', 'name' or 'arrival')", s)
}

// sortEntries sorts entries in place. SortNone keeps file order.
func sortEntries(entries []guest.Entry, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(entries, func(i, j int) bool {
			return compareByDate(entries[i], entries[j])
		})
	case SortByRoom:
		sort.SliceStable(entries, func(i, j int) bool {
			ri, rj := strings.ToLower(entries[i].RoomName), strings.ToLower(entries[j].RoomName)
			if ri != rj {
				return ri < rj
			}
			return compareByDate(entries[i], entries[j])
		})
	case SortByName:
		sort.SliceStable(entries, func(i, j int) bool {
			ni, nj := fields.NormalizeName(entries[i].Name), fields.NormalizeName(entries[j].Name)
			if ni != nj {
				return ni < nj
			}
			return compareByDate(entries[i], entries[j])
		})
	case SortByTime:
		sort.SliceStable(entries, func(i, j int) bool {
			return compareByArrival(entries[i], entries[j])
		})
	}
}

// compareByDate compares two entries by check-in date.
// Returns true if entry i should come before entry j
func compareByDate(i, j guest.Entry) bool {
	dateI := fields.ParseDate(i.CheckIn)
	dateJ := fields.ParseDate(j.CheckIn)

	// If both dates are valid, compare them
	if !dateI.IsZero() && !dateJ.IsZero() {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	if !dateI.IsZero() {
		return true
	}
	if !dateJ.IsZero() {
		return false
	}

	return strings.ToLower(i.RoomName) < strings.ToLower(j.RoomName)
}

// compareByArrival orders by expected arrival time; unreadable times go last.
func compareByArrival(i, j guest.Entry) bool {
	ti, errI := fields.ParseClock(i.ArrivalTime)
	tj, errJ := fields.ParseClock(j.ArrivalTime)

	switch {
	case errI == nil && errJ == nil:
		if ti != tj {
			return ti < tj
		}
		return compareByDate(i, j)
	case errI == nil:
		return true
	default:
		return false
	}
}
