package model

import "time"

// Provider identifies a third-party calendar provider.
type Provider string

const (
	ProviderGoogle Provider = "google"
)

// Integration is one OAuth credential set per (user, provider).
// AccessToken and RefreshToken hold ciphertext everywhere outside the token
// vault; plaintext tokens exist only in memory while a request is served.
type Integration struct {
	ID                  string
	UserID              string
	Provider            Provider
	AccessToken         string
	RefreshToken        string
	TokenExpiry         time.Time
	SelectedCalendarIDs []string
	LastSyncAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CalendarRef is a live view of a remote calendar. Never persisted.
type CalendarRef struct {
	ID          string
	DisplayName string
	AccessRole  string
	IsPrimary   bool
}
