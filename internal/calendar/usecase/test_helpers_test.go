package usecase

import (
	"context"

	"calendar-connect/internal/model"
	"calendar-connect/pkg/gcalendar"
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

// mockVault implements integration.TokenVault with per-test func fields.
type mockVault struct {
	getTokenFunc     func(userID string) (string, error)
	forceRefreshFunc func(userID string) (string, error)
	selectedFunc     func(userID string) ([]string, error)
	touchedLastSync  int
}

func (m *mockVault) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	if m.getTokenFunc == nil {
		return "token-1", nil
	}
	return m.getTokenFunc(userID)
}

func (m *mockVault) ForceRefresh(ctx context.Context, userID string) (string, error) {
	if m.forceRefreshFunc == nil {
		return "token-2", nil
	}
	return m.forceRefreshFunc(userID)
}

func (m *mockVault) SelectedCalendarIDs(ctx context.Context, userID string) ([]string, error) {
	if m.selectedFunc == nil {
		return nil, nil
	}
	return m.selectedFunc(userID)
}

func (m *mockVault) TouchLastSync(ctx context.Context, userID string) {
	m.touchedLastSync++
}

// mockProvider implements ProviderClient with per-test func fields.
type mockProvider struct {
	listFunc   func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error)
	createFunc func(token string, req gcalendar.CreateEventRequest) (model.NormalizedEvent, error)
	updateFunc func(token string, req gcalendar.UpdateEventRequest) (model.NormalizedEvent, error)
	deleteFunc func(token, calendarID, eventID string) error
}

func (m *mockProvider) ListEvents(ctx context.Context, token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(token, req)
}

func (m *mockProvider) CreateEvent(ctx context.Context, token string, req gcalendar.CreateEventRequest) (model.NormalizedEvent, error) {
	if m.createFunc == nil {
		return model.NormalizedEvent{}, nil
	}
	return m.createFunc(token, req)
}

func (m *mockProvider) UpdateEvent(ctx context.Context, token string, req gcalendar.UpdateEventRequest) (model.NormalizedEvent, error) {
	if m.updateFunc == nil {
		return model.NormalizedEvent{}, nil
	}
	return m.updateFunc(token, req)
}

func (m *mockProvider) DeleteEvent(ctx context.Context, token, calendarID, eventID string) error {
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(token, calendarID, eventID)
}
