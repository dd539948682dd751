package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

const revokeEndpoint = "https://oauth2.googleapis.com/revoke"

// Flow wraps the Google OAuth2 authorization-code flow for calendar access.
type Flow struct {
	oauth      *oauth2.Config
	httpClient *http.Client
}

// New creates a Flow from the client credential bundle.
func New(clientID, clientSecret, redirectURL string) *Flow {
	return &Flow{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{calendar.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthCodeURL returns the consent page URL. Offline access plus forced
// consent guarantees Google issues a refresh token on every connect.
func (f *Flow) AuthCodeURL(state string) string {
	return f.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a token set.
func (f *Flow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	token, err := f.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// Refresh mints a new access token from a refresh token. The returned token
// may carry a rotated refresh token; callers must persist it when present.
func (f *Flow) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	src := f.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return token, nil
}

// Revoke notifies Google that a token is no longer in use. Either an access
// or a refresh token is accepted by the endpoint.
func (f *Flow) Revoke(ctx context.Context, token string) error {
	body := url.Values{"token": {token}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, revokeEndpoint, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// IsInvalidGrant reports whether err is an invalid_grant-class token error:
// the refresh token was revoked, expired, or never valid. Such errors are
// unrecoverable without user re-consent.
func IsInvalidGrant(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return false
	}
	if retrieveErr.ErrorCode == "invalid_grant" {
		return true
	}
	// Some token endpoints omit the structured error code.
	return strings.Contains(string(retrieveErr.Body), "invalid_grant")
}
