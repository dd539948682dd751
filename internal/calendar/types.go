package calendar

import "time"

// --- UseCase Inputs ---

// FetchEventsInput selects the aggregation window. CalendarID optionally
// restricts the fetch to one calendar; empty means all selected calendars.
type FetchEventsInput struct {
	From       time.Time
	To         time.Time
	CalendarID string
}

type CreateEventInput struct {
	CalendarID  string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

type UpdateEventInput struct {
	CalendarID  string
	EventID     string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

type DeleteEventInput struct {
	CalendarID string
	EventID    string
}
