package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-connect/internal/calendar"
	"calendar-connect/internal/integration"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/gcalendar"
)

var (
	windowFrom = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	windowTo   = windowFrom.Add(24 * time.Hour)
)

func eventAt(id, calendarID string, hour int) model.NormalizedEvent {
	start := time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
	return model.NormalizedEvent{
		ID:         id,
		CalendarID: calendarID,
		Title:      "event " + id,
		Start:      start,
		End:        start.Add(time.Hour),
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Range", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockVault{}, &mockProvider{}, 0)
		_, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowTo, To: windowFrom})
		if !errors.Is(err, calendar.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("Vault Failure Propagates", func(t *testing.T) {
		vault := &mockVault{
			getTokenFunc: func(userID string) (string, error) {
				return "", integration.ErrNotConnected
			},
		}
		uc := New(&mockLogger{}, vault, &mockProvider{}, 0)
		_, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo})
		if !errors.Is(err, integration.ErrNotConnected) {
			t.Errorf("expected ErrNotConnected, got %v", err)
		}
	})

	t.Run("Defaults To Primary Without Selection", func(t *testing.T) {
		var requested []string
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				requested = append(requested, req.CalendarID)
				return nil, nil
			},
		}
		uc := New(&mockLogger{}, &mockVault{}, provider, 0)

		if _, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(requested) != 1 || requested[0] != "primary" {
			t.Errorf("expected a single primary fetch, got %v", requested)
		}
	})

	t.Run("Failing Calendar Omitted Not Fatal", func(t *testing.T) {
		vault := &mockVault{
			selectedFunc: func(userID string) ([]string, error) {
				return []string{"work", "broken", "personal"}, nil
			},
		}
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				switch req.CalendarID {
				case "broken":
					return nil, gcalendar.ErrProviderUnavailable
				case "work":
					return []model.NormalizedEvent{eventAt("w1", "work", 14)}, nil
				default:
					return []model.NormalizedEvent{eventAt("p1", "personal", 9)}, nil
				}
			},
		}
		uc := New(&mockLogger{}, vault, provider, 0)

		events, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events from surviving calendars, got %d", len(events))
		}
		if events[0].ID != "p1" || events[1].ID != "w1" {
			t.Errorf("expected chronological order p1,w1, got %s,%s", events[0].ID, events[1].ID)
		}
		if vault.touchedLastSync != 1 {
			t.Errorf("expected one last-sync touch, got %d", vault.touchedLastSync)
		}
	})

	t.Run("Equal Starts Ordered By ID", func(t *testing.T) {
		vault := &mockVault{
			selectedFunc: func(userID string) ([]string, error) {
				return []string{"b-cal", "a-cal"}, nil
			},
		}
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				if req.CalendarID == "b-cal" {
					return []model.NormalizedEvent{eventAt("zz", "b-cal", 10)}, nil
				}
				return []model.NormalizedEvent{eventAt("aa", "a-cal", 10)}, nil
			},
		}
		uc := New(&mockLogger{}, vault, provider, 0)

		events, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if events[0].ID != "aa" || events[1].ID != "zz" {
			t.Errorf("expected deterministic ID tiebreak aa,zz got %s,%s", events[0].ID, events[1].ID)
		}
	})

	t.Run("All Calendars Failing Yields Empty List", func(t *testing.T) {
		vault := &mockVault{
			selectedFunc: func(userID string) ([]string, error) {
				return []string{"one", "two"}, nil
			},
		}
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				return nil, gcalendar.ErrProviderUnavailable
			},
		}
		uc := New(&mockLogger{}, vault, provider, 0)

		events, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected empty merge, got %d events", len(events))
		}
		if vault.touchedLastSync != 0 {
			t.Errorf("last sync must not move when every calendar failed, got %d touches", vault.touchedLastSync)
		}
	})

	t.Run("Explicit Calendar Filter Wins Over Selection", func(t *testing.T) {
		vault := &mockVault{
			selectedFunc: func(userID string) ([]string, error) {
				t.Fatal("selection must not be read when a filter is given")
				return nil, nil
			},
		}
		var requested []string
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				requested = append(requested, req.CalendarID)
				return nil, nil
			},
		}
		uc := New(&mockLogger{}, vault, provider, 0)

		input := calendar.FetchEventsInput{From: windowFrom, To: windowTo, CalendarID: "team"}
		if _, err := uc.List(ctx, "user-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(requested) != 1 || requested[0] != "team" {
			t.Errorf("expected only the team calendar, got %v", requested)
		}
	})

	t.Run("Rejected Token Retried After Force Refresh", func(t *testing.T) {
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				if token != "token-2" {
					return nil, gcalendar.ErrUnauthorized
				}
				return []model.NormalizedEvent{eventAt("r1", "primary", 11)}, nil
			},
		}
		uc := New(&mockLogger{}, &mockVault{}, provider, 0)

		events, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].ID != "r1" {
			t.Errorf("expected refreshed fetch to succeed, got %v", events)
		}
	})

	t.Run("Revoked Mid Fanout Propagates Auth Expired", func(t *testing.T) {
		vault := &mockVault{
			selectedFunc: func(userID string) ([]string, error) {
				return []string{"work", "personal"}, nil
			},
			forceRefreshFunc: func(userID string) (string, error) {
				return "", integration.ErrAuthExpired
			},
		}
		provider := &mockProvider{
			listFunc: func(token string, req gcalendar.ListEventsRequest) ([]model.NormalizedEvent, error) {
				return nil, gcalendar.ErrUnauthorized
			},
		}
		uc := New(&mockLogger{}, vault, provider, 0)

		_, err := uc.List(ctx, "user-1", calendar.FetchEventsInput{From: windowFrom, To: windowTo})
		if !errors.Is(err, integration.ErrAuthExpired) {
			t.Errorf("expected ErrAuthExpired, got %v", err)
		}
		if vault.touchedLastSync != 0 {
			t.Errorf("expected no last-sync touch after revocation, got %d", vault.touchedLastSync)
		}
	})
}
