package integration

import (
	"context"

	"calendar-connect/internal/model"
)

// TokenVault is the credential surface other domains consume. Tokens it
// returns are plaintext, valid for at least the freshness window, and must
// never be persisted or logged by callers.
type TokenVault interface {
	// GetValidAccessToken returns a token valid for at least 5 minutes,
	// refreshing first when the stored one expires sooner.
	GetValidAccessToken(ctx context.Context, userID string) (string, error)

	// ForceRefresh refreshes regardless of expiry. Used after a provider
	// rejects a token mid-request.
	ForceRefresh(ctx context.Context, userID string) (string, error)

	// SelectedCalendarIDs returns the user's calendar selection; empty
	// means the caller should fall back to the provider's primary calendar.
	SelectedCalendarIDs(ctx context.Context, userID string) ([]string, error)

	// TouchLastSync records a successful provider read. Best effort.
	TouchLastSync(ctx context.Context, userID string)
}

// UseCase is the full integration surface: the vault plus the HTTP-facing
// lifecycle operations.
type UseCase interface {
	TokenVault

	Connect(ctx context.Context, state string) ConnectOutput
	HandleCallback(ctx context.Context, userID string, input CallbackInput) error
	Detail(ctx context.Context, userID string) (DetailOutput, error)
	UpdateCalendars(ctx context.Context, userID string, input UpdateCalendarsInput) (DetailOutput, error)
	ListProviderCalendars(ctx context.Context, userID string) ([]model.CalendarRef, error)
	Revoke(ctx context.Context, userID string) error
}
