package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/oauth2"

	"calendar-connect/internal/integration/repository"
	"calendar-connect/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeEncrypter is a reversible stand-in: ciphertext is "enc:" + plaintext.
type fakeEncrypter struct{}

func (fakeEncrypter) Encrypt(plaintext string) (string, error) {
	return "enc:" + plaintext, nil
}

func (fakeEncrypter) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", errors.New("not a fake ciphertext")
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

// mockRepo implements repository.Repository with per-test func fields.
type mockRepo struct {
	getFunc             func(opt repository.GetIntegrationOptions) (model.Integration, error)
	upsertFunc          func(opt repository.UpsertIntegrationOptions) (model.Integration, error)
	updateTokensFunc    func(opt repository.UpdateTokensOptions) (bool, error)
	updateCalendarsFunc func(opt repository.UpdateCalendarsOptions) (model.Integration, error)
	updateLastSyncFunc  func(userID string, provider model.Provider) error
	deleteFunc          func(userID string, provider model.Provider) error
}

func (m *mockRepo) GetIntegration(ctx context.Context, opt repository.GetIntegrationOptions) (model.Integration, error) {
	if m.getFunc == nil {
		return model.Integration{}, nil
	}
	return m.getFunc(opt)
}

func (m *mockRepo) UpsertIntegration(ctx context.Context, opt repository.UpsertIntegrationOptions) (model.Integration, error) {
	if m.upsertFunc == nil {
		return model.Integration{ID: "it-1"}, nil
	}
	return m.upsertFunc(opt)
}

func (m *mockRepo) UpdateTokens(ctx context.Context, opt repository.UpdateTokensOptions) (bool, error) {
	if m.updateTokensFunc == nil {
		return true, nil
	}
	return m.updateTokensFunc(opt)
}

func (m *mockRepo) UpdateCalendars(ctx context.Context, opt repository.UpdateCalendarsOptions) (model.Integration, error) {
	if m.updateCalendarsFunc == nil {
		return model.Integration{}, nil
	}
	return m.updateCalendarsFunc(opt)
}

func (m *mockRepo) UpdateLastSync(ctx context.Context, userID string, provider model.Provider) error {
	if m.updateLastSyncFunc == nil {
		return nil
	}
	return m.updateLastSyncFunc(userID, provider)
}

func (m *mockRepo) DeleteIntegration(ctx context.Context, userID string, provider model.Provider) error {
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(userID, provider)
}

// mockFlow implements OAuthFlow with per-test func fields.
type mockFlow struct {
	authCodeURLFunc func(state string) string
	exchangeFunc    func(code string) (*oauth2.Token, error)
	refreshFunc     func(refreshToken string) (*oauth2.Token, error)
	revokeFunc      func(token string) error
}

func (m *mockFlow) AuthCodeURL(state string) string {
	if m.authCodeURLFunc == nil {
		return "https://accounts.example.com/auth?state=" + state
	}
	return m.authCodeURLFunc(state)
}

func (m *mockFlow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if m.exchangeFunc == nil {
		return nil, errors.New("exchange not configured")
	}
	return m.exchangeFunc(code)
}

func (m *mockFlow) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if m.refreshFunc == nil {
		return nil, errors.New("refresh not configured")
	}
	return m.refreshFunc(refreshToken)
}

func (m *mockFlow) Revoke(ctx context.Context, token string) error {
	if m.revokeFunc == nil {
		return nil
	}
	return m.revokeFunc(token)
}

// mockLister implements CalendarLister.
type mockLister struct {
	listFunc func(token string) ([]model.CalendarRef, error)
}

func (m *mockLister) ListCalendars(ctx context.Context, token string) ([]model.CalendarRef, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(token)
}

func invalidGrantErr() error {
	return &oauth2.RetrieveError{ErrorCode: "invalid_grant"}
}
