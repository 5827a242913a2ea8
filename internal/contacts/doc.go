// Package contacts converts guest bookings into a Google Contacts import file.
//
// Each contact is named "YYMMDD - Room - Guest" so that the phone's contact
// list sorts guests by arrival. The output uses the fixed Google Contacts CSV
// header, is comma-delimited, and starts with a UTF-8 byte-order mark so that
// spreadsheet tools detect the encoding.
package contacts
