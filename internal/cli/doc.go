// Package cli implements the command-line interface for rental-tools.
//
// The cli package provides the Cobra-based CLI with three generators fed by
// booking exports: a month calendar of arrivals and departures, a contacts
// CSV for address-book import, and the late-arrival mail text. Settings come
// from RENTAL_* environment variables and can be overridden by flags.
package cli
