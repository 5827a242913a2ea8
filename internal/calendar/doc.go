// Package calendar aggregates arrivals and departures per day and lays them
// out as a month view.
//
// Count buckets the rows of a booking export by the date found in a named
// column. Build turns two such counts into a Sunday-first month grid with a
// colour tier per cell, which can then be written as plain text, HTML, CSV or
// an iCalendar feed.
package calendar
