// Package guest projects booking records onto guest entries and groups the
// entries that belong to the same person.
package guest
