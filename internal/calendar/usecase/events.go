package usecase

import (
	"context"
	"errors"

	"calendar-connect/internal/calendar"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/gcalendar"
)

// CreateEvent creates an event on one calendar of the connected provider.
func (uc *implUseCase) CreateEvent(ctx context.Context, userID string, input calendar.CreateEventInput) (model.NormalizedEvent, error) {
	if !input.Start.Before(input.End) {
		return model.NormalizedEvent{}, calendar.ErrInvalidInterval
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  defaultCalendarID(input.CalendarID),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.Start,
		EndTime:     input.End,
		Attendees:   input.Attendees,
	}

	var created model.NormalizedEvent
	err := uc.withToken(ctx, userID, func(token string) error {
		var callErr error
		created, callErr = uc.provider.CreateEvent(ctx, token, req)
		return callErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		return model.NormalizedEvent{}, err
	}
	return created, nil
}

// UpdateEvent patches an existing event.
func (uc *implUseCase) UpdateEvent(ctx context.Context, userID string, input calendar.UpdateEventInput) (model.NormalizedEvent, error) {
	if input.EventID == "" {
		return model.NormalizedEvent{}, calendar.ErrMissingEventID
	}
	if !input.Start.IsZero() && !input.Start.Before(input.End) {
		return model.NormalizedEvent{}, calendar.ErrInvalidInterval
	}

	req := gcalendar.UpdateEventRequest{
		CalendarID:  defaultCalendarID(input.CalendarID),
		EventID:     input.EventID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.Start,
		EndTime:     input.End,
	}

	var updated model.NormalizedEvent
	err := uc.withToken(ctx, userID, func(token string) error {
		var callErr error
		updated, callErr = uc.provider.UpdateEvent(ctx, token, req)
		return callErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		return model.NormalizedEvent{}, err
	}
	return updated, nil
}

// DeleteEvent removes an event.
func (uc *implUseCase) DeleteEvent(ctx context.Context, userID string, input calendar.DeleteEventInput) error {
	if input.EventID == "" {
		return calendar.ErrMissingEventID
	}

	err := uc.withToken(ctx, userID, func(token string) error {
		return uc.provider.DeleteEvent(ctx, token, defaultCalendarID(input.CalendarID), input.EventID)
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		return err
	}
	return nil
}

// withToken runs a provider call with a vault token, forcing one refresh
// and retry when the provider rejects it.
func (uc *implUseCase) withToken(ctx context.Context, userID string, call func(token string) error) error {
	token, err := uc.vault.GetValidAccessToken(ctx, userID)
	if err != nil {
		return err
	}

	err = call(token)
	if errors.Is(err, gcalendar.ErrUnauthorized) {
		if token, err = uc.vault.ForceRefresh(ctx, userID); err != nil {
			return err
		}
		err = call(token)
	}
	return err
}

func defaultCalendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}
