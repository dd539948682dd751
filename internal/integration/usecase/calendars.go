package usecase

import (
	"context"
	"errors"

	"calendar-connect/internal/integration"
	repo "calendar-connect/internal/integration/repository"
	"calendar-connect/internal/model"
	"calendar-connect/pkg/gcalendar"
)

// Detail returns the integration read resource.
func (uc *implUseCase) Detail(ctx context.Context, userID string) (integration.DetailOutput, error) {
	integ, err := uc.repo.GetIntegration(ctx, repo.GetIntegrationOptions{
		UserID:   userID,
		Provider: model.ProviderGoogle,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetIntegration: %v", err)
		return integration.DetailOutput{}, err
	}
	if integ.ID == "" {
		return integration.DetailOutput{Connected: false}, nil
	}
	return integration.DetailOutput{
		Connected:           true,
		LastSyncAt:          integ.LastSyncAt,
		SelectedCalendarIDs: integ.SelectedCalendarIDs,
	}, nil
}

// UpdateCalendars replaces the user's calendar selection.
func (uc *implUseCase) UpdateCalendars(ctx context.Context, userID string, input integration.UpdateCalendarsInput) (integration.DetailOutput, error) {
	for _, id := range input.CalendarIDs {
		if id == "" {
			return integration.DetailOutput{}, integration.ErrInvalidCalendarIDs
		}
	}

	integ, err := uc.repo.UpdateCalendars(ctx, repo.UpdateCalendarsOptions{
		UserID:      userID,
		Provider:    model.ProviderGoogle,
		CalendarIDs: input.CalendarIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCalendars: %v", err)
		return integration.DetailOutput{}, err
	}
	if integ.ID == "" {
		return integration.DetailOutput{}, integration.ErrNotConnected
	}
	return integration.DetailOutput{
		Connected:           true,
		LastSyncAt:          integ.LastSyncAt,
		SelectedCalendarIDs: integ.SelectedCalendarIDs,
	}, nil
}

// ListProviderCalendars fetches the live calendar list for the selection UI.
// A token rejected by the provider gets one forced refresh and retry.
func (uc *implUseCase) ListProviderCalendars(ctx context.Context, userID string) ([]model.CalendarRef, error) {
	token, err := uc.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	refs, err := uc.calendars.ListCalendars(ctx, token)
	if errors.Is(err, gcalendar.ErrUnauthorized) {
		if token, err = uc.ForceRefresh(ctx, userID); err != nil {
			return nil, err
		}
		refs, err = uc.calendars.ListCalendars(ctx, token)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListProviderCalendars: %v", err)
		return nil, err
	}
	return refs, nil
}
