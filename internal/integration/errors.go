package integration

import "errors"

var (
	// ErrNotConnected means no Integration exists for the user.
	ErrNotConnected = errors.New("calendar provider not connected")

	// ErrAuthExpired means the stored credentials are unrecoverable and the
	// user must reconnect. The Integration row has already been deleted.
	ErrAuthExpired = errors.New("calendar authorization expired, reconnect required")

	// ErrProviderUnavailable means the token endpoint failed transiently
	// even after a retry.
	ErrProviderUnavailable = errors.New("calendar provider unavailable")

	// ErrMissingRefreshToken means the OAuth callback yielded no refresh
	// token and none is stored, so the connection cannot be maintained.
	ErrMissingRefreshToken = errors.New("provider did not issue a refresh token")

	ErrInvalidCalendarIDs = errors.New("calendar id list contains empty entries")
	ErrMissingCode        = errors.New("authorization code is required")
)
