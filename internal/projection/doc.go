// Package projection turns stored venues, artists and shows into the
// read-only shapes the directory pages display. Nothing here touches the
// database; callers load the records and pass in the reference time.
package projection
