package integration

import (
	"time"
)

// --- UseCase Inputs ---

type CallbackInput struct {
	Code  string
	State string
}

type UpdateCalendarsInput struct {
	CalendarIDs []string
}

// --- UseCase Outputs ---

// DetailOutput is the integration read resource. Token material is never
// part of it.
type DetailOutput struct {
	Connected           bool
	LastSyncAt          *time.Time
	SelectedCalendarIDs []string
}

type ConnectOutput struct {
	AuthURL string
}
