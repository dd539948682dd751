package repository

import (
	"time"

	"calendar-connect/internal/model"
)

// GetIntegrationOptions holds filter parameters for fetching a single
// Integration. All non-empty fields are applied as AND conditions.
type GetIntegrationOptions struct {
	UserID   string
	Provider model.Provider
}

// UpsertIntegrationOptions holds parameters for creating or replacing the
// (user, provider) row. Token fields are ciphertext.
type UpsertIntegrationOptions struct {
	UserID       string
	Provider     model.Provider
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
}

// UpdateTokensOptions holds parameters for the conditional refresh write.
// PrevAccessToken is the ciphertext read before the refresh; the update
// applies only while it is still current.
type UpdateTokensOptions struct {
	UserID          string
	Provider        model.Provider
	PrevAccessToken string
	AccessToken     string
	RefreshToken    string
	TokenExpiry     time.Time
}

// UpdateCalendarsOptions replaces the selected calendar list.
type UpdateCalendarsOptions struct {
	UserID      string
	Provider    model.Provider
	CalendarIDs []string
}
