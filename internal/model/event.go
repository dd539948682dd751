package model

import "time"

// Attendee is a participant on a remote calendar event.
type Attendee struct {
	Email          string
	Name           string
	Optional       bool
	ResponseStatus string
}

// NormalizedEvent is the provider-agnostic event shape produced by
// aggregation. Start and End are UTC instants with Start < End; all-day
// events span the whole local day. Transient, reconstructed per request.
type NormalizedEvent struct {
	ID          string
	CalendarID  string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Attendees   []Attendee
}

// Overlaps reports half-open interval intersection with [start, end).
func (e NormalizedEvent) Overlaps(start, end time.Time) bool {
	return start.Before(e.End) && end.After(e.Start)
}
