package gcalendar

import "time"

// ListEventsRequest is the input for listing events on one calendar.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CreateEventRequest is the input for creating an event.
type CreateEventRequest struct {
	CalendarID  string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
}

// UpdateEventRequest is the input for updating an event. Zero-value fields
// keep the remote value; times must be set together or not at all.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}
