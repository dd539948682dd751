package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-connect/internal/availability"
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

// mockAggregator implements calendar.Aggregator.
type mockAggregator struct {
	fetchFunc func(userID string, from, to time.Time) ([]model.NormalizedEvent, error)
}

func (m *mockAggregator) FetchEvents(ctx context.Context, userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
	if m.fetchFunc == nil {
		return nil, nil
	}
	return m.fetchFunc(userID, from, to)
}

var testNow = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

func newSuggester(agg *mockAggregator) *implUseCase {
	uc := New(&mockLogger{}, agg)
	uc.now = func() time.Time { return testNow }
	return uc
}

func busyEvent(day time.Time, fromHour, toHour int) model.NormalizedEvent {
	return model.NormalizedEvent{
		ID:    "busy",
		Start: day.Add(time.Duration(fromHour) * time.Hour),
		End:   day.Add(time.Duration(toHour) * time.Hour),
	}
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Invalid Duration Rejected Before Fetch", func(t *testing.T) {
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				t.Fatal("aggregation must not run for an invalid request")
				return nil, nil
			},
		}
		uc := newSuggester(agg)

		for _, duration := range []int{0, -30, 24*60 + 1} {
			if _, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{DurationMinutes: duration}); !errors.Is(err, availability.ErrInvalidDuration) {
				t.Errorf("duration %d: expected ErrInvalidDuration, got %v", duration, err)
			}
		}
	})

	t.Run("Unknown Preference Rejected", func(t *testing.T) {
		uc := newSuggester(&mockAggregator{})
		_, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{
			DurationMinutes: 30,
			TimePreference:  "midnight",
		})
		if !errors.Is(err, availability.ErrInvalidPreference) {
			t.Errorf("expected ErrInvalidPreference, got %v", err)
		}
	})

	t.Run("Empty Calendar Ranks Morning First", func(t *testing.T) {
		uc := newSuggester(&mockAggregator{})

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{DurationMinutes: 60})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 5 {
			t.Fatalf("expected the top 5 slots, got %d", len(slots))
		}
		wantHours := []int{9, 10, 11, 13, 14}
		for i, slot := range slots {
			if slot.Start.Hour() != wantHours[i] {
				t.Errorf("slot %d: expected hour %d, got %d", i, wantHours[i], slot.Start.Hour())
			}
		}
		if slots[0].Score != 0.8 || slots[3].Score != 0.7 {
			t.Errorf("expected scores 0.8 morning / 0.7 afternoon, got %v / %v", slots[0].Score, slots[3].Score)
		}
	})

	t.Run("Matching Preference Scores Full Marks In The Morning", func(t *testing.T) {
		uc := newSuggester(&mockAggregator{})

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{
			DurationMinutes: 30,
			TimePreference:  availability.PreferenceMorning,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 3 {
			t.Fatalf("expected 3 morning slots, got %d", len(slots))
		}
		for _, slot := range slots {
			if slot.Score != 1.0 {
				t.Errorf("morning slot at %v: expected score 1.0, got %v", slot.Start, slot.Score)
			}
			if slot.Bucket != availability.PreferenceMorning {
				t.Errorf("expected morning bucket, got %q", slot.Bucket)
			}
		}
	})

	t.Run("Evening Preference Excludes Other Buckets", func(t *testing.T) {
		uc := newSuggester(&mockAggregator{})

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{
			DurationMinutes: 45,
			TimePreference:  availability.PreferenceEvening,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 3 {
			t.Fatalf("expected 3 evening slots, got %d", len(slots))
		}
		for _, slot := range slots {
			if slot.Start.Hour() < 17 {
				t.Errorf("unexpected non-evening slot at %v", slot.Start)
			}
			if slot.Score != 0.9 {
				t.Errorf("evening slot: expected score 0.9, got %v", slot.Score)
			}
		}
	})

	t.Run("Busy Morning Pushes Suggestions To The Afternoon", func(t *testing.T) {
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				return []model.NormalizedEvent{busyEvent(today, 9, 12)}, nil
			},
		}
		uc := newSuggester(agg)

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{DurationMinutes: 60})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, slot := range slots {
			if slot.Start.Hour() < 13 {
				t.Errorf("conflicting slot at %v must be filtered", slot.Start)
			}
		}
	})

	t.Run("Back To Back Slots Are Not Conflicts", func(t *testing.T) {
		// Busy 10:00-11:00; a 9:00-10:00 meeting touches but does not
		// overlap under half-open interval semantics.
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				return []model.NormalizedEvent{busyEvent(today, 10, 11)}, nil
			},
		}
		uc := newSuggester(agg)

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{
			DurationMinutes: 60,
			TimePreference:  availability.PreferenceMorning,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 2 {
			t.Fatalf("expected 9:00 and 11:00 to survive, got %d slots", len(slots))
		}
		if slots[0].Start.Hour() != 9 || slots[1].Start.Hour() != 11 {
			t.Errorf("expected hours 9 and 11, got %d and %d", slots[0].Start.Hour(), slots[1].Start.Hour())
		}
	})

	t.Run("Fully Booked Day Yields Empty Result", func(t *testing.T) {
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				return []model.NormalizedEvent{busyEvent(today, 0, 24)}, nil
			},
		}
		uc := newSuggester(agg)

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{DurationMinutes: 30})
		if err != nil {
			t.Fatalf("a fully booked day is a valid empty answer, got error %v", err)
		}
		if len(slots) != 0 {
			t.Errorf("expected no slots, got %d", len(slots))
		}
	})

	t.Run("Aggregation Failure Propagates", func(t *testing.T) {
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				return nil, errors.New("all calendars unreachable")
			},
		}
		uc := newSuggester(agg)

		if _, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{DurationMinutes: 30}); err == nil {
			t.Error("expected aggregation failure to propagate")
		}
	})

	t.Run("Past Preferred Date Rolls To Tomorrow", func(t *testing.T) {
		var fetchedFrom time.Time
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				fetchedFrom = from
				return nil, nil
			},
		}
		uc := newSuggester(agg)

		yesterday := today.Add(-24 * time.Hour)
		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{
			DurationMinutes: 60,
			PreferredDate:   &yesterday,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tomorrow := today.Add(24 * time.Hour)
		if !fetchedFrom.Equal(tomorrow) {
			t.Errorf("expected fetch window to start tomorrow %v, got %v", tomorrow, fetchedFrom)
		}
		if len(slots) == 0 || !slots[0].Start.After(today) {
			t.Error("expected suggestions on the rolled-forward day")
		}
	})

	t.Run("Future Date Used As Given", func(t *testing.T) {
		var fetchedFrom time.Time
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				fetchedFrom = from
				return nil, nil
			},
		}
		uc := newSuggester(agg)

		nextWeek := today.Add(7 * 24 * time.Hour)
		if _, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{
			DurationMinutes: 60,
			PreferredDate:   &nextWeek,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fetchedFrom.Equal(nextWeek) {
			t.Errorf("expected fetch window on %v, got %v", nextWeek, fetchedFrom)
		}
	})

	t.Run("Long Meeting Spanning Anchors", func(t *testing.T) {
		// A 5 hour meeting from 9:00 collides with the 13:00 anchor via
		// its own length, not an event.
		agg := &mockAggregator{
			fetchFunc: func(userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
				return []model.NormalizedEvent{busyEvent(today, 15, 16)}, nil
			},
		}
		uc := newSuggester(agg)

		slots, err := uc.Suggest(ctx, "user-1", availability.SuggestInput{DurationMinutes: 300})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, slot := range slots {
			if slot.Start.Before(today.Add(9*time.Hour)) || slot.End.After(today.Add(24*time.Hour)) {
				t.Errorf("slot %v-%v escapes the day", slot.Start, slot.End)
			}
			switch slot.Start.Hour() {
			case 11, 13, 14, 15:
				t.Errorf("slot starting %v overlaps the 15:00 event", slot.Start)
			}
		}
	})
}
