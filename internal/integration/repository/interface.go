package repository

import (
	"context"

	"calendar-connect/internal/model"
)

// Repository is the data store for Integration rows. Token fields are
// ciphertext on both sides of this boundary; the repository never sees
// plaintext credentials.
type Repository interface {
	// GetIntegration returns the zero-value Integration (ID == "") when no
	// row matches — not-found is not an error.
	GetIntegration(ctx context.Context, opt GetIntegrationOptions) (model.Integration, error)

	// UpsertIntegration creates or replaces the row for (user, provider).
	UpsertIntegration(ctx context.Context, opt UpsertIntegrationOptions) (model.Integration, error)

	// UpdateTokens persists a refresh result only if the stored access
	// token still equals PrevAccessToken. Returns false when another
	// writer got there first.
	UpdateTokens(ctx context.Context, opt UpdateTokensOptions) (bool, error)

	// UpdateCalendars replaces the calendar selection.
	UpdateCalendars(ctx context.Context, opt UpdateCalendarsOptions) (model.Integration, error)

	// UpdateLastSync stamps a successful provider read.
	UpdateLastSync(ctx context.Context, userID string, provider model.Provider) error

	// DeleteIntegration removes the row; deleting a missing row is a no-op.
	DeleteIntegration(ctx context.Context, userID string, provider model.Provider) error
}
