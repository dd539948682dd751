package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"calendar-connect/internal/calendar"
	"calendar-connect/internal/integration"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/gcalendar"
)

// FetchEvents implements calendar.Aggregator: all selected calendars,
// merged and sorted.
func (uc *implUseCase) FetchEvents(ctx context.Context, userID string, from, to time.Time) ([]model.NormalizedEvent, error) {
	return uc.List(ctx, userID, calendar.FetchEventsInput{From: from, To: to})
}

// List fetches events from every selected calendar concurrently. One slow
// or failing calendar degrades completeness, never the whole result: its
// events are omitted and the failure logged. Only vault-level failures
// (not connected, auth expired) propagate.
func (uc *implUseCase) List(ctx context.Context, userID string, input calendar.FetchEventsInput) ([]model.NormalizedEvent, error) {
	if !input.From.Before(input.To) {
		return nil, calendar.ErrInvalidRange
	}

	token, err := uc.vault.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	calendarIDs, err := uc.resolveCalendarIDs(ctx, userID, input.CalendarID)
	if err != nil {
		return nil, err
	}

	type result struct {
		calendarID string
		events     []model.NormalizedEvent
		err        error
	}

	// One goroutine per selected calendar; no artificial cap beyond that.
	// All calls settle before the merge — no early cancellation on first
	// failure.
	results := make([]result, len(calendarIDs))
	var wg sync.WaitGroup
	for i, calendarID := range calendarIDs {
		wg.Add(1)
		go func(i int, calendarID string) {
			defer wg.Done()
			events, err := uc.listOne(ctx, userID, token, calendarID, input.From, input.To)
			results[i] = result{calendarID: calendarID, events: events, err: err}
		}(i, calendarID)
	}
	wg.Wait()

	merged := []model.NormalizedEvent{}
	succeeded := 0
	for _, res := range results {
		if res.err != nil {
			// A token revoked mid-fan-out is a vault-level failure, not
			// a degraded calendar: the caller must see the reconnect
			// signal instead of an empty 200.
			if errors.Is(res.err, integration.ErrAuthExpired) || errors.Is(res.err, integration.ErrNotConnected) {
				return nil, res.err
			}
			uc.l.Warnf(ctx, "uc.List calendar %s omitted: %v", res.calendarID, res.err)
			continue
		}
		succeeded++
		merged = append(merged, res.events...)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Start.Equal(merged[j].Start) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].Start.Before(merged[j].Start)
	})

	if succeeded > 0 {
		uc.vault.TouchLastSync(ctx, userID)
	}
	return merged, nil
}

// listOne fetches a single calendar under its own timeout. A token the
// provider rejects gets one forced refresh and retry; the vault's
// single-flight collapses the refreshes the sibling goroutines trigger.
func (uc *implUseCase) listOne(ctx context.Context, userID, token, calendarID string, from, to time.Time) ([]model.NormalizedEvent, error) {
	req := gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    from,
		TimeMax:    to,
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.calendarTimeout)
	defer cancel()

	events, err := uc.provider.ListEvents(callCtx, token, req)
	if errors.Is(err, gcalendar.ErrUnauthorized) {
		fresh, refreshErr := uc.vault.ForceRefresh(ctx, userID)
		if refreshErr != nil {
			return nil, refreshErr
		}
		retryCtx, retryCancel := context.WithTimeout(ctx, uc.calendarTimeout)
		defer retryCancel()
		events, err = uc.provider.ListEvents(retryCtx, fresh, req)
	}
	return events, err
}

// resolveCalendarIDs applies the explicit filter or the stored selection,
// defaulting to the provider's primary calendar.
func (uc *implUseCase) resolveCalendarIDs(ctx context.Context, userID, explicit string) ([]string, error) {
	if explicit != "" {
		return []string{explicit}, nil
	}
	selected, err := uc.vault.SelectedCalendarIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return []string{"primary"}, nil
	}
	return selected, nil
}
